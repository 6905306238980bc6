package handler

import (
	"cashmemo/internal/delivery/api/response"
	"cashmemo/internal/domain/entity"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var orderStatuses = []string{
	string(entity.OrderPending),
	string(entity.OrderConfirmed),
	string(entity.OrderShipped),
	string(entity.OrderDelivered),
	string(entity.OrderCancelled),
}

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler serves the caller's orders.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

// OrderItemRequest references a product or describes an ad-hoc line.
type OrderItemRequest struct {
	ProductID *string  `json:"product_id" validate:"omitempty,uuid"`
	Name      string   `json:"name" validate:"max=150"`
	UnitPrice *float64 `json:"unit_price" validate:"omitempty,gte=0"`
	Quantity  int      `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest records an order from the dashboard.
type CreateOrderRequest struct {
	CustomerID     *string            `json:"customer_id" validate:"omitempty,uuid"`
	Items          []OrderItemRequest `json:"items" validate:"required,min=1,max=100,dive"`
	DeliveryCharge float64            `json:"delivery_charge" validate:"gte=0"`
	Discount       float64            `json:"discount" validate:"gte=0"`
	Note           string             `json:"note" validate:"max=500"`
}

// UpdateOrderStatusRequest moves an order through fulfilment.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func parseOptionalID(raw *string) *uuid.UUID {
	if raw == nil || *raw == "" {
		return nil
	}

	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil
	}

	return &id
}

// ListOrders lists orders, optionally filtered by status.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	status, err := statusQuery(c, orderStatuses...)
	if err != nil {
		return err
	}

	result, err := h.orderUC.ListOrders(c.Request().Context(), userID, &usecase.ListOrdersInput{
		Status: entity.OrderStatus(status),
		Page:   pageQuery(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// GetOrder returns one order with its items.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, order)
}

// CreateOrder records an order within the monthly limit.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.CreateOrderInput{
		CustomerID:     parseOptionalID(req.CustomerID),
		Items:          make([]usecase.OrderItemInput, 0, len(req.Items)),
		DeliveryCharge: req.DeliveryCharge,
		Discount:       req.Discount,
		Note:           req.Note,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.OrderItemInput{
			ProductID: parseOptionalID(item.ProductID),
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, order)
}

// UpdateOrderStatus applies one fulfilment step.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), userID, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, order)
}

// DeleteOrder removes an order.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), userID, orderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Order deleted")
}
