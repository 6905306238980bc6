package repository

import (
	"context"
	"time"

	"cashmemo/internal/domain/entity"
	"cashmemo/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found in the profile.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows order listings.
type OrderFilter struct {
	ProfileID uuid.UUID
	Status    entity.OrderStatus
	Page      entity.Page
}

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// CreateOrder persists an order together with its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with items and customer.
	FindOrderByID(ctx context.Context, profileID, id uuid.UUID) (*entity.Order, error)

	ListOrders(ctx context.Context, filter OrderFilter) ([]*entity.Order, int64, error)

	// UpdateOrderStatus changes the status of an order.
	UpdateOrderStatus(ctx context.Context, profileID, id uuid.UUID, status entity.OrderStatus) error

	DeleteOrder(ctx context.Context, profileID, id uuid.UUID) error

	// CountOrdersBetween counts orders created in [from, to).
	CountOrdersBetween(ctx context.Context, profileID uuid.UUID, from, to time.Time) (int64, error)
}
