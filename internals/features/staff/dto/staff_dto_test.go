package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var validate = validator.New()

func TestNormalizeUppercasesJenis(t *testing.T) {
	r := StaffCreateRequest{Nama: "  Budi Santoso ", Jenis: " transmisi "}
	r.Normalize()
	assert.Equal(t, "Budi Santoso", r.Nama)
	assert.Equal(t, "TRANSMISI", r.Jenis)
}

func TestStaffCreateRequestValidation(t *testing.T) {
	ok := StaffCreateRequest{Nama: "Budi", Jenis: "PDU"}
	assert.NoError(t, validate.Struct(&ok))

	// Jenis di luar tiga peran ditolak.
	bad := StaffCreateRequest{Nama: "Budi", Jenis: "KAMERAMEN"}
	assert.Error(t, validate.Struct(&bad))

	empty := StaffCreateRequest{Jenis: "TD"}
	assert.Error(t, validate.Struct(&empty))
}

func TestToStaffResponses(t *testing.T) {
	r := StaffCreateRequest{Nama: "Budi", Jenis: "TD"}
	m := r.ToModel()
	m.ID = 7

	out := ToStaffResponse(m)
	assert.Equal(t, 7, out.ID)
	assert.Equal(t, "Budi", out.Nama)
	assert.Equal(t, "TD", out.Jenis)
}
