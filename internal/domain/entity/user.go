package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a seller account. Every user owns exactly one ShopProfile.
type User struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`  // Unique, used as a login identifier.
	Mobile       string       `json:"mobile"` // Unique, used as a login identifier.
	PasswordHash string       `json:"-"`
	IsActive     bool         `json:"is_active"` // Deactivated users cannot log in. Users are never hard-deleted.
	Shop         *ShopProfile `json:"shop,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Admin is a platform operator who verifies payments and manages ads.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
