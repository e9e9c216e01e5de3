package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laporanku_backend/internals/configs"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin/ping", AdminAuthMiddleware(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"username": c.Locals("admin_username")})
	})
	return app
}

func TestAdminAuthAcceptsValidToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newProtectedApp()

	token := signToken(t, "test-secret", jwt.MapClaims{
		"id":       1,
		"username": "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminAuthAcceptsCookieToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newProtectedApp()

	token := signToken(t, "test-secret", jwt.MapClaims{
		"username": "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: "admin_token", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminAuthRejectsMissingToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newProtectedApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminAuthRejectsExpiredToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newProtectedApp()

	token := signToken(t, "test-secret", jwt.MapClaims{
		"username": "admin",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminAuthRejectsWrongSecret(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newProtectedApp()

	token := signToken(t, "another-secret", jwt.MapClaims{
		"username": "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
