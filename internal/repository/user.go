package repository

import (
	"context"
	"errors"
	"github.com/jackc/pgx/v5"
	"github.com/rookgm/shopmart/internal/models"
	"github.com/rookgm/shopmart/internal/repository/postgres"
)

const (
	insertUserQuery = `
						INSERT INTO users (email, password_hash, full_name, phone)
						VALUES ($1, $2, $3, $4)
						RETURNING id, created_at
`
	selectUserByEmailQuery = `
						SELECT id, email, password_hash, full_name, phone, created_at
						FROM users
						WHERE email = $1
`
)

// UserRepository implements UserRepository interface
type UserRepository struct {
	db *postgres.DB
}

// NewUserRepository creates new UserRepository instance
func NewUserRepository(db *postgres.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts new user to database
func (ur *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	err := ur.db.QueryRow(ctx, insertUserQuery, user.Email, user.PasswordHash, user.FullName, user.Phone).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if errCode := ur.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	return user, nil
}

// GetUserByEmail returns user by email
func (ur *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := models.User{}
	err := ur.db.QueryRow(ctx, selectUserByEmailQuery, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.Phone, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &user, nil
}
