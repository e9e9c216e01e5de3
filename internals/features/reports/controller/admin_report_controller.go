package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	model "laporanku_backend/internals/features/reports/model"
	service "laporanku_backend/internals/features/reports/service"
	helper "laporanku_backend/internals/helpers"
)

type AdminReportController struct {
	Service *service.ReportService
}

// =========================================================
// GET /api/admin/reports?type=morning|afternoon
// Urut timestamp desc. ?page/?per_page opsional; tanpa paging
// semua baris dikembalikan seperti dulu.
// =========================================================
func (h *AdminReportController) List(c *fiber.Ctx) error {
	kind, ok := model.ParseReportKind(c.Query("type"))
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report type")
	}

	offset, limit := 0, 0
	var paging *helper.Pagination
	if c.Query("page") != "" || c.Query("per_page") != "" || c.Query("limit") != "" {
		p := helper.ResolvePaging(c, 20, 100)
		offset, limit = p.Offset, p.Limit
		paging = &helper.Pagination{Page: p.Page, PerPage: p.PerPage}
	}

	rows, total, err := h.Service.List(c.UserContext(), kind, offset, limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch reports")
	}

	if paging != nil {
		*paging = helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"reports":    rows,
			"pagination": paging,
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"reports": rows,
	})
}

// =========================================================
// DELETE /api/admin/reports/:id?type=morning|afternoon
// Hapus baris DB dulu, lalu coba hapus pasangan mirror-nya; kegagalan
// di sisi mirror tetap sukses (idempotent).
// =========================================================
func (h *AdminReportController) Delete(c *fiber.Ctx) error {
	kind, ok := model.ParseReportKind(c.Query("type"))
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report type")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.Service.Delete(c.UserContext(), kind, id); err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus laporan")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Report deleted successfully",
	})
}
