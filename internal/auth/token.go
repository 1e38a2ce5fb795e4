package auth

import (
	"errors"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rookgm/shopmart/internal/models"
	"time"
)

// token lifetime
const tokenDuration = 24 * time.Hour

type claims struct {
	jwt.RegisteredClaims
	UserID uint64 `json:"user_id"`
}

// AuthToken creates and verifies signed auth tokens
type AuthToken struct {
	key []byte
}

// NewAuthToken creates new AuthToken instance
func NewAuthToken(key []byte) *AuthToken {
	return &AuthToken{key: key}
}

// CreateToken creates signed token for user
func (at *AuthToken) CreateToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: user.ID,
	})

	return token.SignedString(at.key)
}

// VerifyToken parses tokenString and returns its payload
func (at *AuthToken) VerifyToken(tokenString string) (*models.TokenPayload, error) {
	c := claims{}
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return at.key, nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrInvalidCredentials
	}

	return &models.TokenPayload{UserID: c.UserID}, nil
}
