package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "laporanku_backend/internals/features/staff/dto"
	model "laporanku_backend/internals/features/staff/model"
	helper "laporanku_backend/internals/helpers"
)

type AdminStaffController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// GET /api/admin/staff — semua petugas, urut nama
// =========================================================
func (h *AdminStaffController) List(c *fiber.Ctx) error {
	var staff []model.StaffModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("nama asc").
		Find(&staff).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data petugas")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"staff": dto.ToStaffResponses(staff),
	})
}

// =========================================================
// POST /api/admin/staff
// =========================================================
func (h *AdminStaffController) Create(c *fiber.Ctx) error {
	var req dto.StaffCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Cek duplikasi nama per jenis
	var cnt int64
	if err := h.DB.Model(&model.StaffModel{}).
		Where("lower(nama) = lower(?) AND jenis = ?", req.Nama, req.Jenis).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek duplikasi petugas")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Petugas dengan nama dan jenis ini sudah ada")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Petugas dengan nama dan jenis ini sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data petugas")
	}
	return helper.JsonCreated(c, "Petugas berhasil ditambahkan", dto.ToStaffResponse(m))
}

// =========================================================
// DELETE /api/admin/staff/:id
// =========================================================
func (h *AdminStaffController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.StaffModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Petugas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data petugas")
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus petugas")
	}
	return helper.JsonOK(c, "Petugas berhasil dihapus", dto.ToStaffResponse(&m))
}
