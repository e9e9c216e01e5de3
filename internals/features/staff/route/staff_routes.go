package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	staffController "laporanku_backend/internals/features/staff/controller"
)

// StaffPublicRoutes: dipanggil dengan app.Group("/api")
func StaffPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &staffController.StaffController{DB: db}
	r.Get("/staff", ctl.GetByRole)
}

// StaffAdminRoutes: dipanggil dengan grup /api/admin
func StaffAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &staffController.AdminStaffController{DB: db}
	staff := r.Group("/staff")
	staff.Get("/", ctl.List)
	staff.Post("/", ctl.Create)
	staff.Delete("/:id", ctl.Delete)
}
