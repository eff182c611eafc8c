package service

import (
	"context"
	"errors"
	"time"

	"mela-ticketing/internal/repository"
	apperrors "mela-ticketing/pkg/app_errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type AuthService interface {
	// Login 驗證帳密並簽發 JWT
	Login(ctx context.Context, username, password string) (string, error)
}

type AuthServiceImpl struct {
	repository repository.AdminRepository
	jwtSecret  []byte
}

func NewAuthService(adminRepository repository.AdminRepository, jwtSecret string) AuthService {
	return &AuthServiceImpl{
		repository: adminRepository,
		jwtSecret:  []byte(jwtSecret),
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.repository.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			// 帳號不存在與密碼錯誤回同一個錯，不洩漏帳號是否存在
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": admin.ID,
		"username": admin.Username,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", err
	}

	return signed, nil
}
