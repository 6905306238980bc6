package repository

import (
	"context"

	"cashmemo/internal/domain/entity"
	"cashmemo/internal/errors"

	"github.com/google/uuid"
)

// ErrPlanNotFound is returned when a subscription plan is not found.
var ErrPlanNotFound = errors.New("subscription plan not found")

// PlanRepository defines the interface for the plan catalogue.
type PlanRepository interface {
	// FindPlanByID retrieves a plan by ID.
	FindPlanByID(ctx context.Context, id uuid.UUID) (*entity.SubscriptionPlan, error)

	// FindDefaultPlan retrieves the active plan flagged is_default.
	FindDefaultPlan(ctx context.Context) (*entity.SubscriptionPlan, error)

	// ListActivePlans returns active plans ordered by sort_order.
	ListActivePlans(ctx context.Context) ([]*entity.SubscriptionPlan, error)

	// UpsertPlan inserts or updates a plan keyed by slug.
	UpsertPlan(ctx context.Context, plan *entity.SubscriptionPlan) error
}
