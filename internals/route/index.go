package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"laporanku_backend/internals/configs"
	acaraRoute "laporanku_backend/internals/features/acara/route"
	adminRoute "laporanku_backend/internals/features/admins/route"
	reportRoute "laporanku_backend/internals/features/reports/route"
	reportService "laporanku_backend/internals/features/reports/service"
	staffRoute "laporanku_backend/internals/features/staff/route"
	uploadRoute "laporanku_backend/internals/features/uploads/route"
	wizardRoute "laporanku_backend/internals/features/wizard/route"
	"laporanku_backend/internals/helpers/oss"
	authMiddleware "laporanku_backend/internals/middlewares/auth"
)

var startTime time.Time

// SetupRoutes merakit seluruh endpoint di bawah /api. Grup admin dibungkus
// JWT middleware hanya kalau ADMIN_ENFORCE_JWT menyala; default mengikuti
// perilaku lama (token dicek di sisi klien saja).
func SetupRoutes(app *fiber.App, db *gorm.DB, mirror reportService.SheetMirror, blobs oss.BlobService) {
	startTime = time.Now()

	reports := reportService.NewReportService(db, mirror)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	api := app.Group("/api")

	staffRoute.StaffPublicRoutes(api, db)
	acaraRoute.AcaraPublicRoutes(api)
	uploadRoute.UploadRoutes(api, blobs)
	wizardRoute.WizardRoutes(api, db, reports)
	reportRoute.ReportPublicRoutes(api, reports)
	adminRoute.AdminAuthRoutes(api, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := api.Group("/admin")
	if configs.AdminEnforceJWT {
		log.Println("[INFO] Admin JWT enforcement: ON")
		admin.Use(authMiddleware.AdminAuthMiddleware())
	} else {
		log.Println("[WARN] Admin JWT enforcement: OFF (set ADMIN_ENFORCE_JWT=true to enable)")
	}

	staffRoute.StaffAdminRoutes(admin, db)
	reportRoute.ReportAdminRoutes(admin, reports)
}
