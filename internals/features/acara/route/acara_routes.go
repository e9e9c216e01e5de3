package route

import (
	"github.com/gofiber/fiber/v2"

	acaraController "laporanku_backend/internals/features/acara/controller"
)

func AcaraPublicRoutes(r fiber.Router) {
	ctl := &acaraController.AcaraController{}
	r.Get("/acara/:kind", ctl.Catalog)
}
