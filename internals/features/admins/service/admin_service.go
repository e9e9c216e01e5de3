package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"laporanku_backend/internals/configs"
	model "laporanku_backend/internals/features/admins/model"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AdminService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db, Now: time.Now}
}

// Login memverifikasi kredensial lalu menerbitkan JWT HS256 24 jam.
// Password dicek bcrypt dulu; akun lama yang masih menyimpan plaintext tetap
// bisa masuk lewat perbandingan langsung.
func (s *AdminService) Login(ctx context.Context, username, password string) (string, *model.AdminModel, error) {
	var admin model.AdminModel
	err := s.DB.WithContext(ctx).First(&admin, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		if admin.Password != password {
			return "", nil, ErrInvalidCredentials
		}
	}

	now := s.Now()
	claims := jwt.MapClaims{
		"id":       admin.ID,
		"username": admin.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", nil, err
	}
	return token, &admin, nil
}
