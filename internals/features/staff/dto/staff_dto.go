package dto

import (
	"strings"

	model "laporanku_backend/internals/features/staff/model"
)

/* =========================
   REQUEST
   ========================= */

type StaffCreateRequest struct {
	Nama  string `json:"nama"  validate:"required,min=2,max=100"`
	Jenis string `json:"jenis" validate:"required,oneof=PDU TD TRANSMISI"`
}

func (r *StaffCreateRequest) Normalize() {
	r.Nama = strings.TrimSpace(r.Nama)
	r.Jenis = strings.ToUpper(strings.TrimSpace(r.Jenis))
}

func (r *StaffCreateRequest) ToModel() *model.StaffModel {
	return &model.StaffModel{
		Nama:  r.Nama,
		Jenis: r.Jenis,
	}
}

/* =========================
   RESPONSE
   ========================= */

type StaffResponse struct {
	ID    int    `json:"id"`
	Nama  string `json:"nama"`
	Jenis string `json:"jenis"`
}

func ToStaffResponse(m *model.StaffModel) StaffResponse {
	return StaffResponse{ID: m.ID, Nama: m.Nama, Jenis: m.Jenis}
}

func ToStaffResponses(ms []model.StaffModel) []StaffResponse {
	out := make([]StaffResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToStaffResponse(&ms[i]))
	}
	return out
}
