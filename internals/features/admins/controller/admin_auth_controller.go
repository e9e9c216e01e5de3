package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	dto "laporanku_backend/internals/features/admins/dto"
	service "laporanku_backend/internals/features/admins/service"
	helper "laporanku_backend/internals/helpers"
)

var validate = validator.New()

type AdminAuthController struct {
	Service *service.AdminService
}

func NewAdminAuthController(svc *service.AdminService) *AdminAuthController {
	return &AdminAuthController{Service: svc}
}

// =============================
// POST /api/admin/login
// =============================
func (ctrl *AdminAuthController) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid JSON body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "username and password are required")
	}

	token, admin, err := ctrl.Service.Login(c.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}
	if err != nil {
		log.Printf("[ERROR] admin login: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	return helper.JsonOK(c, "Login berhasil", dto.AdminLoginResponse{
		Token:    token,
		Username: admin.Username,
	})
}
