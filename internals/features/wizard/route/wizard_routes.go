package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportService "laporanku_backend/internals/features/reports/service"
	controller "laporanku_backend/internals/features/wizard/controller"
	service "laporanku_backend/internals/features/wizard/service"
)

// WizardRoutes memasang endpoint dokumen wizard di bawah /form.
func WizardRoutes(api fiber.Router, db *gorm.DB, reports *reportService.ReportService) {
	ctrl := controller.NewWizardController(db, service.NewWizardStore(db), reports)

	form := api.Group("/form")
	form.Get("/:kind", ctrl.Get)
	form.Put("/:kind", ctrl.Put)
	form.Delete("/:kind", ctrl.Delete)
	form.Post("/:kind/events/toggle", ctrl.ToggleEvent)
	form.Get("/:kind/summary", ctrl.Summary)
	form.Post("/:kind/resend", ctrl.Resend)
}
