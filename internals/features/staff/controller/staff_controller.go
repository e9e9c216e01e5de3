package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "laporanku_backend/internals/features/staff/dto"
	model "laporanku_backend/internals/features/staff/model"
	helper "laporanku_backend/internals/helpers"
)

type StaffController struct {
	DB *gorm.DB
}

// =========================================================
// GET /api/staff?role=PDU|TD|TRANSMISI
// Dipakai step 1 wizard untuk mengisi pilihan petugas.
// =========================================================
func (h *StaffController) GetByRole(c *fiber.Ctx) error {
	role := strings.ToUpper(strings.TrimSpace(c.Query("role")))
	if role == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter role wajib diisi")
	}

	var staff []model.StaffModel
	if err := h.DB.WithContext(c.UserContext()).
		Select("id", "nama", "jenis").
		Where("jenis = ?", role).
		Find(&staff).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data petugas")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"staff": dto.ToStaffResponses(staff),
	})
}
