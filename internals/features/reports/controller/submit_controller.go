package controller

import (
	"github.com/gofiber/fiber/v2"

	dto "laporanku_backend/internals/features/reports/dto"
	model "laporanku_backend/internals/features/reports/model"
	service "laporanku_backend/internals/features/reports/service"
)

type SubmitController struct {
	Service *service.ReportService
}

// =========================================================
// POST /api/submit-morning
// =========================================================
func (h *SubmitController) SubmitMorning(c *fiber.Ctx) error {
	return h.submit(c, model.KindMorning)
}

// =========================================================
// POST /api/submit-afternoon
// =========================================================
func (h *SubmitController) SubmitAfternoon(c *fiber.Ctx) error {
	return h.submit(c, model.KindAfternoon)
}

// Semua kegagalan dilipat ke {success:false, message} generik, sama dengan
// respon aplikasi lama.
func (h *SubmitController) submit(c *fiber.Ctx, kind model.ReportKind) error {
	var payload dto.ReportPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid payload",
		})
	}

	if err := h.Service.Submit(c.UserContext(), kind, &payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to submit report",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Report submitted successfully",
	})
}
