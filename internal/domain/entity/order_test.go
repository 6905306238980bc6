package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, OrderPending.CanTransitionTo(OrderConfirmed))
	assert.True(t, OrderConfirmed.CanTransitionTo(OrderShipped))
	assert.True(t, OrderShipped.CanTransitionTo(OrderDelivered))
	assert.True(t, OrderShipped.CanTransitionTo(OrderCancelled))

	assert.False(t, OrderPending.CanTransitionTo(OrderDelivered))
	assert.False(t, OrderDelivered.CanTransitionTo(OrderCancelled))
	assert.False(t, OrderCancelled.CanTransitionTo(OrderPending))
}

func TestOrder_RecomputeTotals(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{UnitPrice: 100, Quantity: 2},
			{UnitPrice: 50, Quantity: 1},
		},
		DeliveryCharge: 60,
		Discount:       10,
	}
	order.RecomputeTotals()

	assert.Equal(t, 200.0, order.Items[0].LineTotal)
	assert.Equal(t, 250.0, order.Subtotal)
	assert.Equal(t, 300.0, order.Total)
}

func TestInvoice_RecomputeStatus(t *testing.T) {
	invoice := &Invoice{Items: []InvoiceLine{{Quantity: 2, UnitPrice: 500}}}
	invoice.RecomputeTotals()
	invoice.RecomputeStatus()
	assert.Equal(t, InvoiceUnpaid, invoice.Status)

	invoice.PaidAmount = 400
	invoice.RecomputeStatus()
	assert.Equal(t, InvoicePartial, invoice.Status)
	assert.Equal(t, 600.0, invoice.Balance())

	invoice.PaidAmount = 1000
	invoice.RecomputeStatus()
	assert.Equal(t, InvoicePaid, invoice.Status)
}

func TestPrincipal(t *testing.T) {
	id := uuid.New()

	user := UserPrincipal(id)
	gotID, ok := user.AsUser()
	assert.True(t, ok)
	assert.Equal(t, id, gotID)
	_, ok = user.AsAdmin()
	assert.False(t, ok)

	admin := AdminPrincipal(id)
	_, ok = admin.AsUser()
	assert.False(t, ok)

	assert.True(t, Principal{}.IsZero())
	kind, ok := ParsePrincipalKind("admin")
	assert.True(t, ok)
	assert.Equal(t, PrincipalAdmin, kind)
	_, ok = ParsePrincipalKind("root")
	assert.False(t, ok)
}
