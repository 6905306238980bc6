package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	mockUsecase "cashmemo/internal/mocks/usecase"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrderService(m *repoMocks, quota usecase.QuotaEngine, now time.Time) *orderService {
	return &orderService{
		txManager: m.tx,
		repos:     m.factory,
		quota:     quota,
		logger:    newDiscardLogger(),
		now:       func() time.Time { return now },
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	m := newRepoMocks(t)
	quota := mockUsecase.NewMockQuotaEngine(t)
	userID := uuid.New()
	shop := m.ownShop(userID)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, dhaka)

	product := &entity.Product{ID: uuid.New(), ProfileID: shop.ID, Name: "Jamdani saree", Price: 500, SalePrice: ptr(450.0), IsActive: true}

	quota.EXPECT().Enforce(mock.Anything, m.factory, shop.ID, entity.QuotaOrder).Return(nil).Once()
	m.product.EXPECT().FindProductsByIDs(mock.Anything, shop.ID, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil).Once()

	var created *entity.Order
	m.order.EXPECT().CreateOrder(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
			created = order
		}).
		Return(nil).
		Once()

	order, err := newTestOrderService(m, quota, now).CreateOrder(context.Background(), userID, &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: &product.ID, Quantity: 2},
			{Name: " Gift wrap ", UnitPrice: ptr(50.0), Quantity: 1},
		},
		DeliveryCharge: 60,
		Discount:       10,
	})

	require.NoError(t, err)
	require.Same(t, created, order)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, entity.OrderSourceDashboard, order.Source)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-240315-"))
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Jamdani saree", order.Items[0].ProductName)
	assert.InDelta(t, 450, order.Items[0].UnitPrice, 0.001)
	assert.InDelta(t, 900, order.Items[0].LineTotal, 0.001)
	assert.Equal(t, "Gift wrap", order.Items[1].ProductName)
	assert.InDelta(t, 950, order.Subtotal, 0.001)
	assert.InDelta(t, 1000, order.Total, 0.001)
}

func TestOrderService_CreateOrder_QuotaExceeded(t *testing.T) {
	m := newRepoMocks(t)
	quota := mockUsecase.NewMockQuotaEngine(t)
	userID := uuid.New()
	shop := m.ownShop(userID)

	quota.EXPECT().Enforce(mock.Anything, m.factory, shop.ID, entity.QuotaOrder).
		Return(domainerrors.ErrQuotaExceeded.WithDetails("the Free plan allows 50 orders per month")).
		Once()

	_, err := newTestOrderService(m, quota, time.Now()).CreateOrder(context.Background(), userID, &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{Name: "Tea", UnitPrice: ptr(20.0), Quantity: 1}},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrQuotaExceeded))
	m.order.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_RejectsBadItems(t *testing.T) {
	missing := uuid.New()

	tests := []struct {
		name    string
		input   *usecase.CreateOrderInput
		wantErr error
	}{
		{
			name:    "negative discount",
			input:   &usecase.CreateOrderInput{Discount: -1, Items: []usecase.OrderItemInput{{Name: "A", UnitPrice: ptr(1.0), Quantity: 1}}},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "no items",
			input:   &usecase.CreateOrderInput{},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "zero quantity",
			input:   &usecase.CreateOrderInput{Items: []usecase.OrderItemInput{{Name: "A", UnitPrice: ptr(1.0)}}},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "ad-hoc line without price",
			input:   &usecase.CreateOrderInput{Items: []usecase.OrderItemInput{{Name: "A", Quantity: 1}}},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "product from another shop",
			input:   &usecase.CreateOrderInput{Items: []usecase.OrderItemInput{{ProductID: &missing, Quantity: 1}}},
			wantErr: domainerrors.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newRepoMocks(t)
			quota := mockUsecase.NewMockQuotaEngine(t)
			userID := uuid.New()
			m.ownShop(userID)

			quota.EXPECT().Enforce(mock.Anything, mock.Anything, mock.Anything, entity.QuotaOrder).Return(nil).Maybe()
			m.product.EXPECT().FindProductsByIDs(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()

			_, err := newTestOrderService(m, quota, time.Now()).CreateOrder(context.Background(), userID, tt.input)

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name    string
		current entity.OrderStatus
		next    entity.OrderStatus
		wantErr error
	}{
		{name: "confirm pending", current: entity.OrderPending, next: entity.OrderConfirmed},
		{name: "ship confirmed", current: entity.OrderConfirmed, next: entity.OrderShipped},
		{name: "cancel shipped", current: entity.OrderShipped, next: entity.OrderCancelled},
		{name: "skip to shipped", current: entity.OrderPending, next: entity.OrderShipped, wantErr: domainerrors.ErrInvalidOrderTransition},
		{name: "reopen delivered", current: entity.OrderDelivered, next: entity.OrderPending, wantErr: domainerrors.ErrInvalidOrderTransition},
		{name: "cancel cancelled", current: entity.OrderCancelled, next: entity.OrderCancelled, wantErr: domainerrors.ErrInvalidOrderTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newRepoMocks(t)
			userID := uuid.New()
			shop := m.ownShop(userID)
			orderID := uuid.New()

			m.order.EXPECT().FindOrderByID(mock.Anything, shop.ID, orderID).
				Return(&entity.Order{ID: orderID, ProfileID: shop.ID, Status: tt.current}, nil).
				Once()
			if tt.wantErr == nil {
				m.order.EXPECT().UpdateOrderStatus(mock.Anything, shop.ID, orderID, tt.next).Return(nil).Once()
			}

			order, err := newTestOrderService(m, nil, time.Now()).UpdateOrderStatus(context.Background(), userID, orderID, tt.next)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, order)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.next, order.Status)
		})
	}
}

func TestOrderService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	m := newRepoMocks(t)

	_, err := newTestOrderService(m, nil, time.Now()).UpdateOrderStatus(context.Background(), uuid.New(), uuid.New(), "returned")

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
