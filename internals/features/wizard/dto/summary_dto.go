package dto

import (
	"strings"
	"time"

	reportDto "laporanku_backend/internals/features/reports/dto"
	reportModel "laporanku_backend/internals/features/reports/model"
)

/* =========================
   Ringkasan (proyeksi read-only)
   ========================= */

type SummarySection struct {
	Title  string     `json:"title"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

type SummaryResponse struct {
	Title    string           `json:"title"`
	Tanggal  string           `json:"tanggal"`
	Sections []SummarySection `json:"sections"`
}

// BuildSummary memproyeksikan dokumen wizard saat ini ke dokumen tabular
// multi-bagian dengan urutan tetap: petugas, bukti, acara, kendala. Murni
// baca; tidak menyentuh hasil submit.
func BuildSummary(kind reportModel.ReportKind, p *reportDto.ReportPayload, now time.Time) SummaryResponse {
	staffRows := [][]string{
		{"PETUGAS PDU", orDefault(p.PduStaff, "Not selected")},
		{"PETUGAS TD", orDefault(p.TdStaff, "Not selected")},
		{"PETUGAS TRANSMISI", orDefault(strings.Join(p.TransmisiStaff, ", "), "None selected")},
	}

	evidenceRows := [][]string{
		{"BUKTI STUDIO", orDefault(p.BuktiStudio, "Not uploaded")},
		{"BUKTI STREAMING", orDefault(p.BuktiStreaming, "Not uploaded")},
		{"BUKTI SUBCONTROL", orDefault(p.BuktiSubcontrol, "Not uploaded")},
	}

	acaraRows := make([][]string, 0, len(p.SelectedEvents))
	for _, e := range p.SelectedEvents {
		acaraRows = append(acaraRows, []string{e.Time, e.Name, e.Type})
	}

	kendalaRows := make([][]string, 0, len(p.Kendalas))
	for _, k := range p.Kendalas {
		kendalaRows = append(kendalaRows, []string{k.Nama, k.Waktu, orDefault(k.BuktiKendala, "No evidence")})
	}

	return SummaryResponse{
		Title:   kind.Title(),
		Tanggal: p.Tanggal(now),
		Sections: []SummarySection{
			{Title: "Staff Selection", Header: []string{"Field", "Value"}, Rows: staffRows},
			{Title: "Photo Evidence", Header: []string{"Slot", "URL"}, Rows: evidenceRows},
			{Title: "ACARA", Header: []string{"Time", "Name", "Type"}, Rows: acaraRows},
			{Title: "KENDALA", Header: []string{"Nama", "Waktu", "Bukti"}, Rows: kendalaRows},
		},
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
