package usecase

import (
	"context"

	"cashmemo/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is either a catalogue product (ProductID set) or an ad-hoc line (Name and UnitPrice set).
type OrderItemInput struct {
	ProductID *uuid.UUID
	Name      string
	UnitPrice *float64
	Quantity  int
}

// CreateOrderInput defines an order recorded from the dashboard.
type CreateOrderInput struct {
	CustomerID     *uuid.UUID
	Items          []OrderItemInput
	DeliveryCharge float64
	Discount       float64
	Note           string
}

// ListOrdersInput narrows order listings.
type ListOrdersInput struct {
	Status entity.OrderStatus
	Page   entity.Page
}

// OrderUsecase defines order management for a seller.
type OrderUsecase interface {
	ListOrders(ctx context.Context, userID uuid.UUID, input *ListOrdersInput) (*entity.PagedResult[*entity.Order], error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// CreateOrder counts against the monthly order quota.
	CreateOrder(ctx context.Context, userID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)

	// UpdateOrderStatus applies one step of the fulfilment state machine.
	UpdateOrderStatus(ctx context.Context, userID, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	DeleteOrder(ctx context.Context, userID, orderID uuid.UUID) error
}
