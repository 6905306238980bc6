package usecase

import (
	"context"
	"time"

	"cashmemo/internal/domain/entity"
	"cashmemo/internal/domain/repository"

	"github.com/google/uuid"
)

// QuotaEngine gates resource creation against the shop's effective plan.
type QuotaEngine interface {
	// Enforce must run inside the caller's transaction. It locks the shop row,
	// resolves the plan and fails with ErrQuotaExceeded when the limit is reached.
	Enforce(ctx context.Context, repos repository.RepositoryFactory, profileID uuid.UUID, resource entity.QuotaResource) error

	// ResolvePlan returns the plan in force for shop at now.
	ResolvePlan(ctx context.Context, repos repository.RepositoryFactory, shop *entity.ShopProfile, now time.Time) (*entity.SubscriptionPlan, error)

	// CheckImageUpload fails with ErrImageUploadNotAllowed when the plan has no image uploads.
	CheckImageUpload(ctx context.Context, userID uuid.UUID) error

	// GetUsage reports the effective plan and current consumption for the dashboard.
	GetUsage(ctx context.Context, userID uuid.UUID) (*entity.PlanUsage, error)
}
