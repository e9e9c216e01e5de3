package route

import (
	"github.com/gofiber/fiber/v2"

	controller "laporanku_backend/internals/features/uploads/controller"
	"laporanku_backend/internals/helpers/oss"
	"laporanku_backend/internals/middlewares"
)

// UploadRoutes memasang endpoint upload bukti foto.
func UploadRoutes(api fiber.Router, blobs oss.BlobService) {
	ctrl := controller.NewUploadController(blobs)
	api.Post("/upload", middlewares.UploadRateLimiter(), ctrl.Upload)
}
