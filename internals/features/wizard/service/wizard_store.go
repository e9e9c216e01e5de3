package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	reportDto "laporanku_backend/internals/features/reports/dto"
	reportModel "laporanku_backend/internals/features/reports/model"
	model "laporanku_backend/internals/features/wizard/model"
)

// DocStorage menyimpan dokumen wizard mentah per (session, kind).
type DocStorage interface {
	// Get mengembalikan (nil, nil) kalau dokumen belum ada.
	Get(ctx context.Context, sessionID string, kind reportModel.ReportKind) ([]byte, error)
	Put(ctx context.Context, sessionID string, kind reportModel.ReportKind, raw []byte) error
	Delete(ctx context.Context, sessionID string, kind reportModel.ReportKind) error
}

/* =========================
   Implementasi GORM (JSONB)
   ========================= */

type GormDocStorage struct {
	DB *gorm.DB
}

func (s *GormDocStorage) Get(ctx context.Context, sessionID string, kind reportModel.ReportKind) ([]byte, error) {
	var m model.WizardDocumentModel
	err := s.DB.WithContext(ctx).
		First(&m, "session_id = ? AND kind = ?", sessionID, string(kind)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(m.Doc), nil
}

func (s *GormDocStorage) Put(ctx context.Context, sessionID string, kind reportModel.ReportKind, raw []byte) error {
	m := model.WizardDocumentModel{
		SessionID: sessionID,
		Kind:      string(kind),
		Doc:       raw,
	}
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "kind"}},
			DoUpdates: clause.AssignmentColumns([]string{"doc", "updated_at"}),
		}).
		Create(&m).Error
}

func (s *GormDocStorage) Delete(ctx context.Context, sessionID string, kind reportModel.ReportKind) error {
	return s.DB.WithContext(ctx).
		Where("session_id = ? AND kind = ?", sessionID, string(kind)).
		Delete(&model.WizardDocumentModel{}).Error
}

/* =========================
   Wizard store
   ========================= */

type WizardStore struct {
	Docs DocStorage
}

func NewWizardStore(db *gorm.DB) *WizardStore {
	return &WizardStore{Docs: &GormDocStorage{DB: db}}
}

// Load mengembalikan dokumen untuk (session, kind); kunjungan pertama atau
// dokumen rusak menghasilkan dokumen kosong, bukan error.
func (s *WizardStore) Load(ctx context.Context, sessionID string, kind reportModel.ReportKind) (*reportDto.ReportPayload, error) {
	raw, err := s.Docs.Get(ctx, sessionID, kind)
	if err != nil {
		return nil, fmt.Errorf("load wizard doc: %w", err)
	}
	return parsePayload(raw), nil
}

// Save shallow-merge patch ke dokumen tersimpan (last-write-wins per field
// top-level) dan menulis ulang dokumen utuh secara sinkron.
func (s *WizardStore) Save(ctx context.Context, sessionID string, kind reportModel.ReportKind, patch map[string]json.RawMessage) (*reportDto.ReportPayload, error) {
	raw, err := s.Docs.Get(ctx, sessionID, kind)
	if err != nil {
		return nil, fmt.Errorf("load wizard doc: %w", err)
	}

	merged := map[string]json.RawMessage{}
	if len(raw) > 0 {
		// Dokumen rusak diperlakukan sebagai kosong.
		_ = json.Unmarshal(raw, &merged)
		if merged == nil {
			merged = map[string]json.RawMessage{}
		}
	}
	for k, v := range patch {
		merged[k] = v
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("marshal wizard doc: %w", err)
	}
	if err := s.Docs.Put(ctx, sessionID, kind, out); err != nil {
		return nil, fmt.Errorf("save wizard doc: %w", err)
	}
	return parsePayload(out), nil
}

// Clear membuang dokumen; kunjungan berikutnya mulai dari dokumen kosong.
func (s *WizardStore) Clear(ctx context.Context, sessionID string, kind reportModel.ReportKind) error {
	if err := s.Docs.Delete(ctx, sessionID, kind); err != nil {
		return fmt.Errorf("clear wizard doc: %w", err)
	}
	return nil
}

// ToggleEvent menambah/menghapus satu triple acara; toggle dua kali
// mengembalikan keadaan semula.
func (s *WizardStore) ToggleEvent(ctx context.Context, sessionID string, kind reportModel.ReportKind, ev reportDto.SelectedEvent) (*reportDto.ReportPayload, error) {
	p, err := s.Load(ctx, sessionID, kind)
	if err != nil {
		return nil, err
	}

	kept := p.SelectedEvents[:0]
	removed := false
	for _, e := range p.SelectedEvents {
		if e.Equal(ev) {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if removed {
		p.SelectedEvents = kept
	} else {
		p.SelectedEvents = append(p.SelectedEvents, ev)
	}

	if err := s.persist(ctx, sessionID, kind, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DropMissingTransmisi membuang pilihan transmisi yang sudah tidak ada di
// direktori petugas, lalu menyimpan kalau ada yang berubah.
func (s *WizardStore) DropMissingTransmisi(ctx context.Context, sessionID string, kind reportModel.ReportKind, p *reportDto.ReportPayload, valid []string) (bool, error) {
	if !ReconcileTransmisi(p, valid) {
		return false, nil
	}
	if err := s.persist(ctx, sessionID, kind, p); err != nil {
		return false, err
	}
	return true, nil
}

func (s *WizardStore) persist(ctx context.Context, sessionID string, kind reportModel.ReportKind, p *reportDto.ReportPayload) error {
	out, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal wizard doc: %w", err)
	}
	if err := s.Docs.Put(ctx, sessionID, kind, out); err != nil {
		return fmt.Errorf("save wizard doc: %w", err)
	}
	return nil
}

// ReconcileTransmisi memotong p.TransmisiStaff dengan daftar nama yang masih
// valid. Mengembalikan true kalau ada yang terbuang.
func ReconcileTransmisi(p *reportDto.ReportPayload, valid []string) bool {
	if len(p.TransmisiStaff) == 0 {
		return false
	}
	validSet := make(map[string]struct{}, len(valid))
	for _, v := range valid {
		validSet[v] = struct{}{}
	}

	kept := p.TransmisiStaff[:0]
	changed := false
	for _, nama := range p.TransmisiStaff {
		if _, ok := validSet[nama]; ok {
			kept = append(kept, nama)
		} else {
			changed = true
		}
	}
	p.TransmisiStaff = kept
	return changed
}

// parsePayload membaca dokumen field per field supaya satu field rusak tidak
// menggugurkan seluruh dokumen: field yang gagal di-parse jatuh ke default.
func parsePayload(raw []byte) *reportDto.ReportPayload {
	p := &reportDto.ReportPayload{
		TransmisiStaff: []string{},
		SelectedEvents: []reportDto.SelectedEvent{},
		Kendalas:       []reportDto.Kendala{},
	}
	if len(raw) == 0 {
		return p
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return p
	}

	get := func(key string, dst any) {
		if v, ok := m[key]; ok {
			_ = json.Unmarshal(v, dst)
		}
	}
	get("pduStaff", &p.PduStaff)
	get("tdStaff", &p.TdStaff)
	get("transmisiStaff", &p.TransmisiStaff)
	get("buktiStudio", &p.BuktiStudio)
	get("buktiStreaming", &p.BuktiStreaming)
	get("buktiSubcontrol", &p.BuktiSubcontrol)
	get("selectedEvents", &p.SelectedEvents)
	get("kendalas", &p.Kendalas)
	get("customDate", &p.CustomDate)

	if p.TransmisiStaff == nil {
		p.TransmisiStaff = []string{}
	}
	if p.SelectedEvents == nil {
		p.SelectedEvents = []reportDto.SelectedEvent{}
	}
	if p.Kendalas == nil {
		p.Kendalas = []reportDto.Kendala{}
	}
	return p
}
