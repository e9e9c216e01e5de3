package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reportDto "laporanku_backend/internals/features/reports/dto"
	reportModel "laporanku_backend/internals/features/reports/model"
)

type memDocStorage struct {
	docs map[string][]byte
}

func newMemDocStorage() *memDocStorage {
	return &memDocStorage{docs: map[string][]byte{}}
}

func (m *memDocStorage) key(sid string, kind reportModel.ReportKind) string {
	return sid + "/" + string(kind)
}

func (m *memDocStorage) Get(_ context.Context, sid string, kind reportModel.ReportKind) ([]byte, error) {
	return m.docs[m.key(sid, kind)], nil
}

func (m *memDocStorage) Put(_ context.Context, sid string, kind reportModel.ReportKind, raw []byte) error {
	m.docs[m.key(sid, kind)] = raw
	return nil
}

func (m *memDocStorage) Delete(_ context.Context, sid string, kind reportModel.ReportKind) error {
	delete(m.docs, m.key(sid, kind))
	return nil
}

func newTestStore() *WizardStore {
	return &WizardStore{Docs: newMemDocStorage()}
}

func rawPatch(t *testing.T, kv map[string]any) map[string]json.RawMessage {
	t.Helper()
	out := map[string]json.RawMessage{}
	for k, v := range kv {
		b, err := json.Marshal(v)
		require.NoError(t, err)
		out[k] = b
	}
	return out
}

func TestLoadFirstVisitReturnsEmptyDoc(t *testing.T) {
	s := newTestStore()
	p, err := s.Load(context.Background(), "sess-1", reportModel.KindMorning)
	require.NoError(t, err)
	assert.Equal(t, "", p.PduStaff)
	assert.Empty(t, p.TransmisiStaff)
	assert.Empty(t, p.SelectedEvents)
	assert.Empty(t, p.Kendalas)
}

func TestSaveShallowMergeLastWriteWins(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.Save(ctx, "sess-1", reportModel.KindMorning, rawPatch(t, map[string]any{
		"pduStaff":       "Andi",
		"transmisiStaff": []string{"Budi", "Sari"},
	}))
	require.NoError(t, err)

	// Patch berikutnya hanya menyentuh field yang dikirim.
	p, err := s.Save(ctx, "sess-1", reportModel.KindMorning, rawPatch(t, map[string]any{
		"pduStaff": "Citra",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Citra", p.PduStaff)
	assert.Equal(t, []string{"Budi", "Sari"}, p.TransmisiStaff)
}

func TestSaveIsScopedPerKindAndSession(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.Save(ctx, "sess-1", reportModel.KindMorning, rawPatch(t, map[string]any{"pduStaff": "Andi"}))
	require.NoError(t, err)

	p, err := s.Load(ctx, "sess-1", reportModel.KindAfternoon)
	require.NoError(t, err)
	assert.Equal(t, "", p.PduStaff)

	p, err = s.Load(ctx, "sess-2", reportModel.KindMorning)
	require.NoError(t, err)
	assert.Equal(t, "", p.PduStaff)
}

func TestClearResetsDocument(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.Save(ctx, "sess-1", reportModel.KindMorning, rawPatch(t, map[string]any{"pduStaff": "Andi"}))
	require.NoError(t, err)

	require.NoError(t, s.Clear(ctx, "sess-1", reportModel.KindMorning))

	p, err := s.Load(ctx, "sess-1", reportModel.KindMorning)
	require.NoError(t, err)
	assert.Equal(t, "", p.PduStaff)
}

func TestToggleEventTwiceRestoresState(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	ev := reportDto.SelectedEvent{Time: "08.00 - 09.30", Name: "HABAR BANUA", Type: "rerun"}

	p, err := s.ToggleEvent(ctx, "sess-1", reportModel.KindMorning, ev)
	require.NoError(t, err)
	require.Len(t, p.SelectedEvents, 1)

	p, err = s.ToggleEvent(ctx, "sess-1", reportModel.KindMorning, ev)
	require.NoError(t, err)
	assert.Empty(t, p.SelectedEvents)
}

func TestToggleEventDistinguishesType(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.ToggleEvent(ctx, "sess-1", reportModel.KindMorning,
		reportDto.SelectedEvent{Time: "08.00 - 09.30", Name: "HABAR BANUA", Type: "rerun"})
	require.NoError(t, err)

	// Triple beda (type lain) tidak menghapus yang sudah ada.
	p, err := s.ToggleEvent(ctx, "sess-1", reportModel.KindMorning,
		reportDto.SelectedEvent{Time: "08.00 - 09.30", Name: "HABAR BANUA", Type: "live"})
	require.NoError(t, err)
	assert.Len(t, p.SelectedEvents, 2)
}

func TestMalformedStoredDocTreatedAsEmpty(t *testing.T) {
	mem := newMemDocStorage()
	s := &WizardStore{Docs: mem}
	ctx := context.Background()

	require.NoError(t, mem.Put(ctx, "sess-1", reportModel.KindMorning, []byte("{not json")))

	p, err := s.Load(ctx, "sess-1", reportModel.KindMorning)
	require.NoError(t, err)
	assert.Equal(t, "", p.PduStaff)

	// Save di atas dokumen rusak tetap jalan, bukan error.
	p, err = s.Save(ctx, "sess-1", reportModel.KindMorning, rawPatch(t, map[string]any{"pduStaff": "Andi"}))
	require.NoError(t, err)
	assert.Equal(t, "Andi", p.PduStaff)
}

func TestReconcileTransmisi(t *testing.T) {
	p := &reportDto.ReportPayload{TransmisiStaff: []string{"Budi", "Sari", "Tono"}}

	changed := ReconcileTransmisi(p, []string{"Budi", "Tono"})
	assert.True(t, changed)
	assert.Equal(t, []string{"Budi", "Tono"}, p.TransmisiStaff)

	changed = ReconcileTransmisi(p, []string{"Budi", "Tono"})
	assert.False(t, changed)

	empty := &reportDto.ReportPayload{}
	assert.False(t, ReconcileTransmisi(empty, nil))
}

func TestDropMissingTransmisiPersists(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	p, err := s.Save(ctx, "sess-1", reportModel.KindMorning, rawPatch(t, map[string]any{
		"transmisiStaff": []string{"Budi", "Sari"},
	}))
	require.NoError(t, err)

	changed, err := s.DropMissingTransmisi(ctx, "sess-1", reportModel.KindMorning, p, []string{"Sari"})
	require.NoError(t, err)
	assert.True(t, changed)

	reloaded, err := s.Load(ctx, "sess-1", reportModel.KindMorning)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sari"}, reloaded.TransmisiStaff)
}
