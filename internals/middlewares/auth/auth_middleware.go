package auth

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"laporanku_backend/internals/configs"
	helper "laporanku_backend/internals/helpers"
)

// AdminAuthMiddleware memverifikasi JWT admin (HS256) dari header/cookie.
//
// Catatan: aplikasi aslinya hanya mengecek token di sisi client, jadi
// middleware ini baru terpasang di grup /api/admin kalau ADMIN_ENFORCE_JWT
// aktif (lihat route.SetupRoutes).
func AdminAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - No token provided")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		if username, ok := claims["username"].(string); ok {
			c.Locals("admin_username", username)
		}
		if id, ok := claims["id"]; ok {
			c.Locals("admin_id", fmt.Sprintf("%v", id))
		}
		return c.Next()
	}
}

func validateTokenExpiry(claims jwt.MapClaims, skew time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("token has no exp")
	}

	var expUnix int64
	switch t := expVal.(type) {
	case float64:
		expUnix = int64(t)
	case int64:
		expUnix = t
	default:
		return fmt.Errorf("unsupported exp type %T", expVal)
	}

	if time.Now().Add(-skew).Unix() > expUnix {
		return fmt.Errorf("token expired at %d", expUnix)
	}
	return nil
}
