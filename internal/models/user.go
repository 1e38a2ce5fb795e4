package models

import "time"

// User is user entity
type User struct {
	ID           uint64
	Email        string
	PasswordHash string
	FullName     string
	Phone        string
	CreatedAt    time.Time
}

// TokenPayload is authorization token payload
type TokenPayload struct {
	UserID uint64
}
