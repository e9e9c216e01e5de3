package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JWTSecret       string
	SpreadsheetID   string
	AdminEnforceJWT bool
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	SpreadsheetID = GetEnv("GOOGLE_SHEETS_SPREADSHEET_ID")
	AdminEnforceJWT = parseBool(GetEnv("ADMIN_ENFORCE_JWT"))

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if SpreadsheetID == "" {
		log.Println("❌ GOOGLE_SHEETS_SPREADSHEET_ID belum diset!")
	} else {
		log.Println("✅ GOOGLE_SHEETS_SPREADSHEET_ID berhasil dimuat.")
	}

	if AdminEnforceJWT {
		log.Println("✅ ADMIN_ENFORCE_JWT aktif, endpoint admin dilindungi JWT.")
	} else {
		log.Println("⚠️ ADMIN_ENFORCE_JWT tidak aktif, endpoint admin terbuka (perilaku lama).")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
