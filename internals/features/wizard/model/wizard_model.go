package model

import (
	"time"

	"gorm.io/datatypes"
)

// WizardDocumentModel adalah satu dokumen wizard yang sedang diisi: satu per
// (session, jenis laporan). Disimpan utuh sebagai JSONB dan selalu
// di-overwrite penuh oleh setiap step, meniru perilaku localStorage di
// aplikasi lama.
type WizardDocumentModel struct {
	SessionID string         `json:"session_id" gorm:"column:session_id;type:text;primaryKey"`
	Kind      string         `json:"kind" gorm:"column:kind;type:text;primaryKey"`
	Doc       datatypes.JSON `json:"doc" gorm:"column:doc;type:jsonb;not null"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (WizardDocumentModel) TableName() string { return "wizard_documents" }
