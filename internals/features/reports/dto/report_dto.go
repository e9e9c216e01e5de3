package dto

import (
	"fmt"
	"strings"
	"time"

	model "laporanku_backend/internals/features/reports/model"
)

/* =========================
   Dokumen wizard / payload submit
   ========================= */

// SelectedEvent adalah satu acara terpilih. Keanggotaan dites dengan
// kesamaan triple persis, bukan identitas.
type SelectedEvent struct {
	Time string `json:"time"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func (e SelectedEvent) Equal(o SelectedEvent) bool {
	return e.Time == o.Time && e.Name == o.Name && e.Type == o.Type
}

// Kendala adalah satu insiden selama shift. ID dibuat client dari wall-clock
// dan tidak punya arti di sisi server.
type Kendala struct {
	ID           string `json:"id"`
	Nama         string `json:"nama"`
	Waktu        string `json:"waktu"`
	BuktiKendala string `json:"buktiKendala"`
}

// ReportPayload adalah bentuk JSON dokumen wizard, field per field sama
// dengan yang dikirim halaman summary saat submit.
type ReportPayload struct {
	PduStaff        string          `json:"pduStaff"`
	TdStaff         string          `json:"tdStaff"`
	TransmisiStaff  []string        `json:"transmisiStaff"`
	BuktiStudio     string          `json:"buktiStudio"`
	BuktiStreaming  string          `json:"buktiStreaming"`
	BuktiSubcontrol string          `json:"buktiSubcontrol"`
	SelectedEvents  []SelectedEvent `json:"selectedEvents"`
	Kendalas        []Kendala       `json:"kendalas"`
	CustomDate      string          `json:"customDate"`
}

/* =========================
   Serialisasi ke kedua sink
   ========================= */

func (p *ReportPayload) JoinTransmisi() string {
	return strings.Join(p.TransmisiStaff, ", ")
}

// FormatSelectedEvents: "08.00 - 09.30: HABAR BANUA (rerun)" digabung "; ".
func (p *ReportPayload) FormatSelectedEvents() string {
	parts := make([]string, 0, len(p.SelectedEvents))
	for _, e := range p.SelectedEvents {
		parts = append(parts, fmt.Sprintf("%s: %s (%s)", e.Time, e.Name, e.Type))
	}
	return strings.Join(parts, "; ")
}

// FormatKendalas: "nama - waktu" digabung "; ".
func (p *ReportPayload) FormatKendalas() string {
	parts := make([]string, 0, len(p.Kendalas))
	for _, k := range p.Kendalas {
		parts = append(parts, fmt.Sprintf("%s - %s", k.Nama, k.Waktu))
	}
	return strings.Join(parts, "; ")
}

// Tanggal: tanggal pilihan user, fallback ke tanggal submit.
func (p *ReportPayload) Tanggal(now time.Time) string {
	if strings.TrimSpace(p.CustomDate) != "" {
		return strings.TrimSpace(p.CustomDate)
	}
	return now.Format("2006-01-02")
}

// ToRow membangun baris relasional; timestamp diisi pemanggil (server-side).
func (p *ReportPayload) ToRow(now time.Time) *model.ReportModel {
	return &model.ReportModel{
		Timestamp:       now,
		PduStaff:        p.PduStaff,
		TdStaff:         p.TdStaff,
		TransmisiStaff:  p.JoinTransmisi(),
		BuktiStudio:     p.BuktiStudio,
		BuktiStreaming:  p.BuktiStreaming,
		BuktiSubcontrol: p.BuktiSubcontrol,
		SelectedEvents:  p.FormatSelectedEvents(),
		Kendalas:        p.FormatKendalas(),
		Tanggal:         p.Tanggal(now),
	}
}

// SheetRow membangun baris mirror, urutan kolom sama dengan tabel relasional,
// timestamp di kolom A sebagai kunci korelasi.
func (p *ReportPayload) SheetRow(now time.Time) []string {
	return []string{
		model.FormatTimestamp(now),
		p.PduStaff,
		p.TdStaff,
		p.JoinTransmisi(),
		p.BuktiStudio,
		p.BuktiStreaming,
		p.BuktiSubcontrol,
		p.FormatSelectedEvents(),
		p.FormatKendalas(),
		p.Tanggal(now),
	}
}
