package acara

import (
	model "laporanku_backend/internals/features/reports/model"
)

// Event adalah satu pilihan acara di slot waktu.
type Event struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// TimeSlot adalah satu blok jadwal dengan pilihan acaranya.
type TimeSlot struct {
	Time   string  `json:"time"`
	Events []Event `json:"events"`
}

// Katalog per jenis laporan. Hardcoded, sama dengan jadwal di form lama;
// entri ad hoc tetap boleh ditambahkan user di luar katalog ini.
var morningCatalog = []TimeSlot{
	{
		Time: "08.00 - 09.30",
		Events: []Event{
			{Name: "HABAR BANUA", Type: "rerun"},
			{Name: "Sekolah Ku Keren", Type: "Playback"},
			{Name: "Cerdas Ceria", Type: "Playback"},
			{Name: "Warung Bubuhan", Type: "Playback"},
		},
	},
	{
		Time: "09.30 - 10.00",
		Events: []Event{
			{Name: "Habar Banua", Type: "Rerun"},
			{Name: "Bakunjang", Type: "Playback"},
			{Name: "Geliat Tanah Borneo", Type: "Rerun"},
		},
	},
	{
		Time: "10.00 - 11.00",
		Events: []Event{
			{Name: "Ini Borneo", Type: "Relay"},
			{Name: "Ini Borneo", Type: "Live"},
			{Name: "Dangdut Keliling", Type: "Playback"},
			{Name: "Hari yang Berkah", Type: "Rerun"},
		},
	},
	{
		Time: "11.00 - 11.30",
		Events: []Event{
			{Name: "Ini Borneo", Type: "Relay"},
			{Name: "Ini Borneo", Type: "Live"},
			{Name: "Inspirasi Indonesia", Type: "Playback"},
			{Name: "Lintas Borneo", Type: "Playback"},
			{Name: "Pesona Indonesia Kalsel", Type: "Playback"},
		},
	},
	{
		Time: "11.30 - 12.00",
		Events: []Event{
			{Name: "Ini Borneo", Type: "Relay"},
			{Name: "Ini Borneo", Type: "Live"},
			{Name: "Kindai Limpuar", Type: "Rerun"},
			{Name: "Lensa Olahraga", Type: "Rerun"},
		},
	},
}

var afternoonCatalog = []TimeSlot{
	{
		Time: "15.00 - 16.00",
		Events: []Event{
			{Name: "Banua Bicara", Type: "Live"},
			{Name: "Hidup Sehat", Type: "Live"},
			{Name: "Hidup Sehat", Type: "Playback"},
			{Name: "Ngopi", Type: "Live"},
			{Name: "Cahaya Qalbu", Type: "Live"},
			{Name: "Cahaya Qalbu", Type: "Playback"},
			{Name: "Hari Yang Berkah", Type: "Playback"},
			{Name: "Inspirasi Indonesia - Nusantara", Type: "Playback"},
			{Name: "Ngopi", Type: "Rerun"},
			{Name: "Warung Bubuhan", Type: "Playback"},
		},
	},
	{
		Time: "16.00 - 17.00",
		Events: []Event{
			{Name: "Music On Studio", Type: "Playback"},
			{Name: "Sekolah Ku Keren", Type: "Rerun"},
			{Name: "Cerdas Ceria", Type: "Rerun"},
			{Name: "Banua Bicara OTR", Type: "Playback"},
			{Name: "Kindai Limpuar", Type: "Rerun"},
			{Name: "Hidup Sehat", Type: "Rerun"},
			{Name: "Siroh Protestan", Type: "Rerun"},
			{Name: "Siroh Hindu", Type: "Rerun"},
			{Name: "Siroh Katolik", Type: "Rerun"},
			{Name: "Siroh Buddha", Type: "Rerun"},
			{Name: "Siroh Kongwuchu", Type: "Rerun"},
			{Name: "Dangdut Keliling", Type: "Playback"},
			{Name: "Bakunjang", Type: "Rerun"},
			{Name: "Lensa Olahraga", Type: "Rerun"},
		},
	},
	{
		Time: "17.00 - 18.00",
		Events: []Event{
			{Name: "Kalsel Hari Ini", Type: "Live"},
			{Name: "Habar Banua", Type: "Playback"},
		},
	},
	{
		Time: "18.00 - 19.00",
		Events: []Event{
			{Name: "Kajian Tauhid", Type: "Playback"},
			{Name: "Fiqih Wanita", Type: "Playback"},
			{Name: "Mutiara Hadis", Type: "Playback"},
			{Name: "Azan Maghrib", Type: "Playback"},
			{Name: "PKS ANTARA", Type: "Playback"},
			{Name: "Pesona Indonesia - Nusantara", Type: "Playback"},
			{Name: "Inspirasi Indonesia", Type: "Playback"},
			{Name: "Jejak Islam", Type: "Playback"},
			{Name: "Anak Indonesia", Type: "Playback"},
			{Name: "Pesona Indonesia - Kalsel", Type: "Playback"},
			{Name: "Sinema Banua", Type: "Playback"},
		},
	},
}

// Catalog mengembalikan jadwal untuk jenis laporan.
func Catalog(kind model.ReportKind) []TimeSlot {
	if kind == model.KindAfternoon {
		return afternoonCatalog
	}
	return morningCatalog
}
