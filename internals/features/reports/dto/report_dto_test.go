package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSelectedEvents(t *testing.T) {
	p := &ReportPayload{
		SelectedEvents: []SelectedEvent{
			{Time: "08.00 - 09.30", Name: "HABAR BANUA", Type: "rerun"},
			{Time: "10.00 - 11.00", Name: "SMILE SHOPPING", Type: "live"},
		},
	}
	assert.Equal(t,
		"08.00 - 09.30: HABAR BANUA (rerun); 10.00 - 11.00: SMILE SHOPPING (live)",
		p.FormatSelectedEvents())
}

func TestFormatSelectedEventsEmpty(t *testing.T) {
	p := &ReportPayload{}
	assert.Equal(t, "", p.FormatSelectedEvents())
}

func TestFormatKendalas(t *testing.T) {
	p := &ReportPayload{
		Kendalas: []Kendala{
			{ID: "1700000000000", Nama: "Pemadaman listrik", Waktu: "09.15", BuktiKendala: "https://cdn/x.webp"},
			{Nama: "Sinyal drop", Waktu: "10.40"},
		},
	}
	// URL bukti kendala sengaja tidak ikut ke string gabungan.
	assert.Equal(t, "Pemadaman listrik - 09.15; Sinyal drop - 10.40", p.FormatKendalas())
}

func TestJoinTransmisi(t *testing.T) {
	p := &ReportPayload{TransmisiStaff: []string{"Budi", "Sari"}}
	assert.Equal(t, "Budi, Sari", p.JoinTransmisi())

	p = &ReportPayload{}
	assert.Equal(t, "", p.JoinTransmisi())
}

func TestTanggalFallback(t *testing.T) {
	now := time.Date(2024, 3, 14, 16, 5, 0, 0, time.UTC)

	p := &ReportPayload{CustomDate: "2024-03-01"}
	assert.Equal(t, "2024-03-01", p.Tanggal(now))

	p = &ReportPayload{CustomDate: "   "}
	assert.Equal(t, "2024-03-14", p.Tanggal(now))

	p = &ReportPayload{}
	assert.Equal(t, "2024-03-14", p.Tanggal(now))
}

func TestSelectedEventEqual(t *testing.T) {
	a := SelectedEvent{Time: "08.00 - 09.30", Name: "HABAR BANUA", Type: "rerun"}
	assert.True(t, a.Equal(SelectedEvent{Time: "08.00 - 09.30", Name: "HABAR BANUA", Type: "rerun"}))
	// Beda type = acara beda, meski time+name sama.
	assert.False(t, a.Equal(SelectedEvent{Time: "08.00 - 09.30", Name: "HABAR BANUA", Type: "live"}))
}

// Payload minimal: satu acara, tanpa bukti foto, tanpa transmisi, satu
// kendala tanpa bukti. Memastikan baris di kedua sink identik kolom per
// kolom dan slot kosong tetap string kosong.
func TestToRowAndSheetRowMinimalPayload(t *testing.T) {
	now := time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)
	p := &ReportPayload{
		PduStaff: "Andi",
		TdStaff:  "Rina",
		SelectedEvents: []SelectedEvent{
			{Time: "08.00 - 09.30", Name: "HABAR BANUA", Type: "rerun"},
		},
		Kendalas: []Kendala{{Nama: "Mati lampu", Waktu: "08.45"}},
	}

	row := p.ToRow(now)
	require.NotNil(t, row)
	assert.Equal(t, now, row.Timestamp)
	assert.Equal(t, "Andi", row.PduStaff)
	assert.Equal(t, "Rina", row.TdStaff)
	assert.Equal(t, "", row.TransmisiStaff)
	assert.Equal(t, "", row.BuktiStudio)
	assert.Equal(t, "", row.BuktiStreaming)
	assert.Equal(t, "", row.BuktiSubcontrol)
	assert.Equal(t, "08.00 - 09.30: HABAR BANUA (rerun)", row.SelectedEvents)
	assert.Equal(t, "Mati lampu - 08.45", row.Kendalas)
	assert.Equal(t, "2024-03-14", row.Tanggal)

	sheet := p.SheetRow(now)
	require.Len(t, sheet, 10)
	assert.Equal(t, "2024-03-14T09:30:00.000Z", sheet[0])
	assert.Equal(t, []string{
		"2024-03-14T09:30:00.000Z",
		"Andi",
		"Rina",
		"",
		"",
		"",
		"",
		"08.00 - 09.30: HABAR BANUA (rerun)",
		"Mati lampu - 08.45",
		"2024-03-14",
	}, sheet)
}
