package service

import (
	"context"
	"github.com/rookgm/shopmart/internal/models"
	"golang.org/x/crypto/bcrypt"
	"strings"
)

// minimum allowed password length
const minPasswordLen = 6

// UserRepository is interface for interacting with user data
type UserRepository interface {
	// CreateUser inserts new user to database
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	// GetUserByEmail returns user by email
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserService implements UserService interface
type UserService struct {
	repo UserRepository
}

// NewUserService creates new UserService instance
func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// Register validates credentials, hashes the password and stores new user
func (s *UserService) Register(ctx context.Context, email, password, fullName, phone string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, models.NewValidationError("email", "is required")
	}
	at := strings.IndexByte(email, '@')
	if at < 1 || at == len(email)-1 {
		return nil, models.NewValidationError("email", "is malformed")
	}
	if len(password) < minPasswordLen {
		return nil, models.NewValidationError("password", "is too short")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Phone:        phone,
	}

	return s.repo.CreateUser(ctx, user)
}
