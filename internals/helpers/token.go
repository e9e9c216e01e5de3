package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetRawAccessToken mengembalikan access token dari:
// 1) Authorization header "Bearer <token>"
// 2) cookie "admin_token"
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := strings.TrimSpace(c.Get("Authorization"))
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		tok := strings.TrimSpace(auth[len(p):])
		return strings.Trim(tok, "\"'")
	}
	if v := strings.TrimSpace(c.Cookies("admin_token")); v != "" {
		return v
	}
	return ""
}
