// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cashmemo/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to open a seller account and its shop.
type RegisterUserInput struct {
	Name     string
	Email    string
	Mobile   string
	Password string
	ShopName string
}

// LoginInput accepts either an email address or a mobile number as the identifier.
type LoginInput struct {
	Identifier string
	Password   string
}

// AdminLoginInput defines the data required for an administrator to log in.
type AdminLoginInput struct {
	Email    string
	Password string
}

// UpdateMeInput carries the editable account fields. Nil fields are left unchanged.
type UpdateMeInput struct {
	Name   *string
	Mobile *string
}

// ListUsersInput narrows the admin user listing.
type ListUsersInput struct {
	Search string
	Page   entity.Page
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after a successful registration or login.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	User         *entity.User
}

// AdminAuthOutput returns the generated tokens for an administrator.
type AdminAuthOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	Admin        *entity.Admin
}

// RefreshOutput carries a freshly issued access token.
type RefreshOutput struct {
	AccessToken string
	ExpiresIn   int64
}

// AuthUsecase defines account and session operations for sellers and administrators.
type AuthUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	RefreshToken(ctx context.Context, refreshToken string) (*RefreshOutput, error)
	AdminLogin(ctx context.Context, input *AdminLoginInput) (*AdminAuthOutput, error)

	// GetMe returns the caller with its shop profile attached.
	GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, input *UpdateMeInput) (*entity.User, error)

	// ListUsers and SetUserActive back the admin console. Users are never hard-deleted.
	ListUsers(ctx context.Context, input *ListUsersInput) (*entity.PagedResult[*entity.User], error)
	SetUserActive(ctx context.Context, userID uuid.UUID, active bool) (*entity.User, error)
}
