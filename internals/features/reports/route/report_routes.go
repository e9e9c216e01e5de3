package route

import (
	"github.com/gofiber/fiber/v2"

	reportController "laporanku_backend/internals/features/reports/controller"
	service "laporanku_backend/internals/features/reports/service"
)

// ReportPublicRoutes: dua entry point submit yang independen.
func ReportPublicRoutes(r fiber.Router, svc *service.ReportService) {
	ctl := &reportController.SubmitController{Service: svc}
	r.Post("/submit-morning", ctl.SubmitMorning)
	r.Post("/submit-afternoon", ctl.SubmitAfternoon)
}

// ReportAdminRoutes: list + delete laporan.
func ReportAdminRoutes(r fiber.Router, svc *service.ReportService) {
	ctl := &reportController.AdminReportController{Service: svc}
	reports := r.Group("/reports")
	reports.Get("/", ctl.List)
	reports.Delete("/:id", ctl.Delete)
}
