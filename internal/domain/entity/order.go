package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderSource records where an order was placed.
type OrderSource string

const (
	OrderSourceDashboard  OrderSource = "dashboard"
	OrderSourceStorefront OrderSource = "storefront"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderShipped, OrderCancelled},
	OrderShipped:   {OrderDelivered, OrderCancelled},
}

// IsValid reports whether s is a known status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Delivered and cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Order is a sale recorded by a shop, either from the dashboard or the storefront.
// The Delivery fields hold the contact details typed at checkout.
type Order struct {
	ID              uuid.UUID   `json:"id"`
	ProfileID       uuid.UUID   `json:"profile_id"`
	CustomerID      *uuid.UUID  `json:"customer_id,omitempty"`
	OrderNumber     string      `json:"order_number"`
	Status          OrderStatus `json:"status"`
	Source          OrderSource `json:"source"`
	Items           []OrderItem `json:"items"`
	Subtotal        float64     `json:"subtotal"`
	DeliveryCharge  float64     `json:"delivery_charge"`
	Discount        float64     `json:"discount"`
	Total           float64     `json:"total"`
	Note            string      `json:"note,omitempty"`
	DeliveryName    string      `json:"delivery_name,omitempty"`
	DeliveryMobile  string      `json:"delivery_mobile,omitempty"`
	DeliveryAddress string      `json:"delivery_address,omitempty"`
	Customer        *Customer   `json:"customer,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem snapshots the product name and price at the time of sale.
type OrderItem struct {
	ID          uuid.UUID  `json:"id"`
	OrderID     uuid.UUID  `json:"order_id"`
	ProductID   *uuid.UUID `json:"product_id,omitempty"`
	ProductName string     `json:"product_name"`
	UnitPrice   float64    `json:"unit_price"`
	Quantity    int        `json:"quantity"`
	LineTotal   float64    `json:"line_total"`
}

// RecomputeTotals derives line totals, subtotal and total from the items.
func (o *Order) RecomputeTotals() {
	var subtotal float64
	for i := range o.Items {
		o.Items[i].LineTotal = o.Items[i].UnitPrice * float64(o.Items[i].Quantity)
		subtotal += o.Items[i].LineTotal
	}

	o.Subtotal = subtotal
	o.Total = subtotal + o.DeliveryCharge - o.Discount
	if o.Total < 0 {
		o.Total = 0
	}
}
