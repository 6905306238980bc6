// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"cashmemo/internal/domain/entity"
	"cashmemo/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the email or mobile is already registered.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrAdminNotFound is returned when an admin is not found.
	ErrAdminNotFound = errors.New("admin not found")
)

// UserRepository defines the interface for seller account persistence.
type UserRepository interface {
	// CreateUser persists a new user.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by email address.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindUserByMobile retrieves a user by mobile number.
	FindUserByMobile(ctx context.Context, mobile string) (*entity.User, error)

	// UpdateUser updates name, mobile and active flag.
	UpdateUser(ctx context.Context, user *entity.User) error

	// ListUsers returns one page of users ordered by newest first, with the total count.
	ListUsers(ctx context.Context, search string, page entity.Page) ([]*entity.User, int64, error)
}

// AdminRepository defines the interface for administrator persistence.
type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin *entity.Admin) error
	FindAdminByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	FindAdminByEmail(ctx context.Context, email string) (*entity.Admin, error)
}
