package service

import (
	"context"
	"errors"
	"github.com/rookgm/shopmart/internal/models"
	"golang.org/x/crypto/bcrypt"
	"strings"
)

// TokenService issues and verifies signed auth tokens
type TokenService interface {
	CreateToken(user *models.User) (string, error)
	VerifyToken(tokenString string) (*models.TokenPayload, error)
}

// AuthService checks user credentials and issues auth tokens
type AuthService struct {
	repo  UserRepository
	token TokenService
}

// NewAuthService creates new AuthService instance
func NewAuthService(repo UserRepository, token TokenService) *AuthService {
	return &AuthService{
		repo:  repo,
		token: token,
	}
}

// Authenticate checks user credentials and returns signed auth token
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrDataNotFound) {
			return "", models.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	return s.token.CreateToken(user)
}
