package controller

import (
	"github.com/gofiber/fiber/v2"

	acara "laporanku_backend/internals/features/acara"
	model "laporanku_backend/internals/features/reports/model"
	helper "laporanku_backend/internals/helpers"
)

type AcaraController struct{}

// =========================================================
// GET /api/acara/:kind — jadwal acara untuk step 3 wizard
// =========================================================
func (h *AcaraController) Catalog(c *fiber.Ctx) error {
	kind, ok := model.ParseReportKind(c.Params("kind"))
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report type")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"acara": acara.Catalog(kind),
	})
}
