package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

/* =========================
   Jenis laporan (pagi/sore)
   ========================= */

type ReportKind string

const (
	KindMorning   ReportKind = "morning"
	KindAfternoon ReportKind = "afternoon"
)

func ParseReportKind(s string) (ReportKind, bool) {
	switch ReportKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindMorning:
		return KindMorning, true
	case KindAfternoon:
		return KindAfternoon, true
	}
	return "", false
}

// Table: tabel relasional untuk jenis ini.
func (k ReportKind) Table() string {
	if k == KindAfternoon {
		return "afternoon_reports"
	}
	return "morning_reports"
}

// SheetName: named range di spreadsheet mirror.
func (k ReportKind) SheetName() string {
	if k == KindAfternoon {
		return "AFTERNOON"
	}
	return "MORNING"
}

func (k ReportKind) Title() string {
	if k == KindAfternoon {
		return "Laporan TD Sore"
	}
	return "Laporan TD Pagi"
}

/* =========================
   Baris laporan tersimpan
   ========================= */

// ReportModel adalah satu baris laporan di morning_reports/afternoon_reports.
// Tidak punya TableName tetap; semua akses lewat db.Table(kind.Table()).
// Timestamp diisi server saat insert dan menjadi kunci korelasi dengan baris
// mirror di spreadsheet (tidak ada surrogate key yang dibagi dua sink).
type ReportModel struct {
	ID              uuid.UUID `json:"id" gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Timestamp       time.Time `json:"timestamp" gorm:"column:timestamp;type:timestamptz;not null;index"`
	PduStaff        string    `json:"pdu_staff" gorm:"column:pdu_staff;type:text"`
	TdStaff         string    `json:"td_staff" gorm:"column:td_staff;type:text"`
	TransmisiStaff  string    `json:"transmisi_staff" gorm:"column:transmisi_staff;type:text"`
	BuktiStudio     string    `json:"bukti_studio" gorm:"column:bukti_studio;type:text"`
	BuktiStreaming  string    `json:"bukti_streaming" gorm:"column:bukti_streaming;type:text"`
	BuktiSubcontrol string    `json:"bukti_subcontrol" gorm:"column:bukti_subcontrol;type:text"`
	SelectedEvents  string    `json:"selected_events" gorm:"column:selected_events;type:text"`
	Kendalas        string    `json:"kendalas" gorm:"column:kendalas;type:text"`
	Tanggal         string    `json:"tanggal" gorm:"column:tanggal;type:text"`
}

// FormatTimestamp menyamakan format dengan kolom A mirror (gaya toISOString).
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
