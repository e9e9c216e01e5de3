package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "laporanku_backend/internals/features/admins/controller"
	service "laporanku_backend/internals/features/admins/service"
	"laporanku_backend/internals/middlewares"
)

// AdminAuthRoutes memasang endpoint login admin (rate-limited ketat).
func AdminAuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminAuthController(service.NewAdminService(db))
	api.Post("/admin/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
