package model

// StaffModel adalah baris direktori petugas. Jenis menentukan perannya di
// laporan: PDU, TD, atau TRANSMISI.
type StaffModel struct {
	ID    int    `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Nama  string `json:"nama" gorm:"column:nama;type:text;not null"`
	Jenis string `json:"jenis" gorm:"column:jenis;type:text;not null;index:idx_petugas2_jenis"`
}

func (StaffModel) TableName() string { return "petugas2" }
