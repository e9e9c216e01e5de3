package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helper "laporanku_backend/internals/helpers"
	oss "laporanku_backend/internals/helpers/oss"
)

type UploadController struct {
	Blobs oss.BlobService
}

func NewUploadController(blobs oss.BlobService) *UploadController {
	return &UploadController{Blobs: blobs}
}

// =============================
// POST /api/upload
// =============================
// Terima satu file multipart (field "file"), simpan ke object storage, dan
// balas URL publiknya. Form wizard menyimpan URL ini sebagai bukti foto.
func (ctrl *UploadController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file is required")
	}
	if fh.Size > oss.MaxUploadSize {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "File too large (max 5MB)")
	}

	url, err := ctrl.Blobs.UploadEvidence(c.Context(), fh)
	if err != nil {
		log.Printf("[ERROR] upload evidence: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Upload failed")
	}
	return c.JSON(fiber.Map{"url": url})
}
