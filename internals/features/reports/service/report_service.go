package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "laporanku_backend/internals/features/reports/dto"
	model "laporanku_backend/internals/features/reports/model"
)

var ErrReportNotFound = errors.New("report not found")

// RowStore adalah akses baris laporan di store relasional.
type RowStore interface {
	Insert(ctx context.Context, kind model.ReportKind, row *model.ReportModel) error
	// List urut timestamp desc; limit <= 0 berarti tanpa paging.
	List(ctx context.Context, kind model.ReportKind, offset, limit int) ([]model.ReportModel, int64, error)
	FindByID(ctx context.Context, kind model.ReportKind, id uuid.UUID) (*model.ReportModel, error)
	DeleteByID(ctx context.Context, kind model.ReportKind, id uuid.UUID) error
}

/* =========================
   Implementasi GORM
   ========================= */

type GormRowStore struct {
	DB *gorm.DB
}

func (s *GormRowStore) Insert(ctx context.Context, kind model.ReportKind, row *model.ReportModel) error {
	return s.DB.WithContext(ctx).Table(kind.Table()).Create(row).Error
}

func (s *GormRowStore) List(ctx context.Context, kind model.ReportKind, offset, limit int) ([]model.ReportModel, int64, error) {
	var total int64
	if err := s.DB.WithContext(ctx).Table(kind.Table()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := s.DB.WithContext(ctx).Table(kind.Table()).Order(`"timestamp" desc`)
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	var rows []model.ReportModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *GormRowStore) FindByID(ctx context.Context, kind model.ReportKind, id uuid.UUID) (*model.ReportModel, error) {
	var row model.ReportModel
	err := s.DB.WithContext(ctx).Table(kind.Table()).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *GormRowStore) DeleteByID(ctx context.Context, kind model.ReportKind, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Table(kind.Table()).Where("id = ?", id).Delete(&model.ReportModel{}).Error
}

/* =========================
   Service laporan
   ========================= */

type ReportService struct {
	Rows   RowStore
	Mirror SheetMirror
	Now    func() time.Time
}

func NewReportService(db *gorm.DB, mirror SheetMirror) *ReportService {
	return &ReportService{
		Rows:   &GormRowStore{DB: db},
		Mirror: mirror,
		Now:    time.Now,
	}
}

// Submit menulis satu laporan ke dua sink secara berurutan: insert relasional
// dulu, lalu append ke mirror. Timestamp diambil sekali dan dipakai kedua
// sink — kolom timestamp adalah kunci korelasi saat delete. Kalau insert
// gagal, append tidak dicoba. Kalau append gagal setelah insert sukses,
// submit tetap dilaporkan gagal meski baris DB sudah ada (lihat DESIGN.md).
func (s *ReportService) Submit(ctx context.Context, kind model.ReportKind, payload *dto.ReportPayload) error {
	now := s.Now()
	row := payload.ToRow(now)
	if err := s.Rows.Insert(ctx, kind, row); err != nil {
		return fmt.Errorf("insert %s report: %w", kind, err)
	}

	if err := s.Mirror.Append(ctx, kind.SheetName(), payload.SheetRow(now)); err != nil {
		log.Printf("[ERROR] mirror append (%s): %v", kind, err)
		return fmt.Errorf("append %s mirror: %w", kind, err)
	}
	return nil
}

func (s *ReportService) List(ctx context.Context, kind model.ReportKind, offset, limit int) ([]model.ReportModel, int64, error) {
	return s.Rows.List(ctx, kind, offset, limit)
}

// Delete menghapus baris relasional lalu mencari pasangan mirror lewat
// timestamp. Kegagalan atau ketidakcocokan di sisi mirror tidak membatalkan
// penghapusan DB: keduanya dilaporkan sukses (idempotent delete).
func (s *ReportService) Delete(ctx context.Context, kind model.ReportKind, id uuid.UUID) error {
	row, err := s.Rows.FindByID(ctx, kind, id)
	if err != nil {
		return err
	}
	if err := s.Rows.DeleteByID(ctx, kind, id); err != nil {
		return fmt.Errorf("delete %s report: %w", kind, err)
	}

	ts := model.FormatTimestamp(row.Timestamp)
	found, err := s.Mirror.DeleteRowByTimestamp(ctx, kind.SheetName(), ts)
	if err != nil {
		log.Printf("[WARN] mirror delete (%s ts=%s) gagal, baris DB tetap terhapus: %v", kind, ts, err)
	} else if !found {
		log.Printf("[INFO] mirror row ts=%s tidak ditemukan di %s, dianggap sukses", ts, kind.SheetName())
	}
	return nil
}
