package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"cashmemo/config"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	mockSvc "cashmemo/internal/mocks/service"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestInvoiceService(m *repoMocks, qr *mockSvc.MockQRCodeService) *invoiceService {
	now := time.Date(2024, 5, 2, 9, 30, 0, 0, dhaka)

	return &invoiceService{
		txManager: m.tx,
		repos:     m.factory,
		qrCode:    qr,
		shopCfg:   &config.ShopConfig{PublicBaseURL: "https://cashmemo.test/"},
		logger:    newDiscardLogger(),
		now:       func() time.Time { return now },
	}
}

func TestInvoiceService_CreateInvoice_FromOrder(t *testing.T) {
	m := newRepoMocks(t)
	userID := uuid.New()
	shop := m.ownShop(userID)
	orderID := uuid.New()
	customer := &entity.Customer{ID: uuid.New(), Name: "Farzana Akter", Mobile: "01819000000"}

	m.order.EXPECT().FindOrderByID(mock.Anything, shop.ID, orderID).Return(&entity.Order{
		ID:             orderID,
		ProfileID:      shop.ID,
		DeliveryCharge: 80,
		Discount:       20,
		Customer:       customer,
		Items: []entity.OrderItem{
			{ProductName: "Nakshi kantha", UnitPrice: 1200, Quantity: 1},
			{ProductName: "Cushion cover", UnitPrice: 150, Quantity: 4},
		},
	}, nil).Once()
	m.invoice.EXPECT().CreateInvoice(mock.Anything, mock.AnythingOfType("*entity.Invoice")).Return(nil).Once()

	invoice, err := newTestInvoiceService(m, nil).CreateInvoice(context.Background(), userID, &usecase.CreateInvoiceInput{
		OrderID:  &orderID,
		Discount: 30,
	})

	require.NoError(t, err)
	assert.Equal(t, "Farzana Akter", invoice.CustomerName)
	assert.Equal(t, "01819000000", invoice.CustomerPhone)
	assert.Equal(t, &customer.ID, invoice.CustomerID)
	require.Len(t, invoice.Items, 3)
	assert.Equal(t, "Delivery charge", invoice.Items[2].Description)
	assert.InDelta(t, 1880, invoice.Subtotal, 0.001)
	assert.InDelta(t, 50, invoice.Discount, 0.001)
	assert.InDelta(t, 1830, invoice.Total, 0.001)
	assert.Equal(t, entity.InvoiceUnpaid, invoice.Status)
	assert.True(t, strings.HasPrefix(invoice.InvoiceNumber, "INV-240502-"))
	assert.Len(t, invoice.PublicToken, 32)
}

func TestInvoiceService_CreateInvoice_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.CreateInvoiceInput
	}{
		{name: "no items", input: &usecase.CreateInvoiceInput{CustomerName: "Rahim"}},
		{name: "no customer", input: &usecase.CreateInvoiceInput{Items: []usecase.InvoiceLineInput{{Description: "Tea", Quantity: 1, UnitPrice: 10}}}},
		{name: "zero quantity", input: &usecase.CreateInvoiceInput{CustomerName: "Rahim", Items: []usecase.InvoiceLineInput{{Description: "Tea", UnitPrice: 10}}}},
		{name: "negative discount", input: &usecase.CreateInvoiceInput{CustomerName: "Rahim", Discount: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newRepoMocks(t)
			userID := uuid.New()
			m.ownShop(userID)

			_, err := newTestInvoiceService(m, nil).CreateInvoice(context.Background(), userID, tt.input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
		})
	}
}

func TestInvoiceService_CreatePayment(t *testing.T) {
	tests := []struct {
		name       string
		paid       float64
		amount     float64
		wantErr    error
		wantPaid   float64
		wantStatus entity.InvoiceStatus
	}{
		{name: "partial payment", paid: 0, amount: 400, wantPaid: 400, wantStatus: entity.InvoicePartial},
		{name: "settles balance", paid: 400, amount: 600, wantPaid: 1000, wantStatus: entity.InvoicePaid},
		{name: "overpayment refused", paid: 400, amount: 600.5, wantErr: domainerrors.ErrValidationFailed},
		{name: "zero amount", amount: 0, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newRepoMocks(t)
			userID := uuid.New()
			shop := m.ownShop(userID)
			invoiceID := uuid.New()

			m.invoice.EXPECT().LockInvoiceByID(mock.Anything, shop.ID, invoiceID).
				Return(&entity.Invoice{ID: invoiceID, ProfileID: shop.ID, Total: 1000, PaidAmount: tt.paid}, nil).
				Maybe()
			if tt.wantErr == nil {
				m.payment.EXPECT().CreatePayment(mock.Anything, mock.MatchedBy(func(p *entity.Payment) bool {
					return p.InvoiceID == invoiceID && p.Method == "bkash"
				})).Return(nil).Once()
				m.invoice.EXPECT().UpdatePaidAmount(mock.Anything, invoiceID, tt.wantPaid, tt.wantStatus).Return(nil).Once()
			}

			payment, err := newTestInvoiceService(m, nil).CreatePayment(context.Background(), userID, invoiceID, &usecase.CreatePaymentInput{
				Amount: tt.amount,
				Method: " bKash ",
			})

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.amount, payment.Amount, 0.001)
		})
	}
}

func TestInvoiceService_DeletePayment_RestoresBalance(t *testing.T) {
	m := newRepoMocks(t)
	userID := uuid.New()
	shop := m.ownShop(userID)
	invoiceID, paymentID := uuid.New(), uuid.New()

	m.invoice.EXPECT().LockInvoiceByID(mock.Anything, shop.ID, invoiceID).
		Return(&entity.Invoice{ID: invoiceID, Total: 1000, PaidAmount: 1000, Status: entity.InvoicePaid}, nil).
		Once()
	m.payment.EXPECT().FindPaymentByID(mock.Anything, invoiceID, paymentID).
		Return(&entity.Payment{ID: paymentID, InvoiceID: invoiceID, Amount: 1000}, nil).
		Once()
	m.payment.EXPECT().DeletePayment(mock.Anything, invoiceID, paymentID).Return(nil).Once()
	m.invoice.EXPECT().UpdatePaidAmount(mock.Anything, invoiceID, 0.0, entity.InvoiceUnpaid).Return(nil).Once()

	require.NoError(t, newTestInvoiceService(m, nil).DeletePayment(context.Background(), userID, invoiceID, paymentID))
}

func TestInvoiceService_DeletePayment_NotFound(t *testing.T) {
	m := newRepoMocks(t)
	userID := uuid.New()
	shop := m.ownShop(userID)
	invoiceID := uuid.New()

	m.invoice.EXPECT().LockInvoiceByID(mock.Anything, shop.ID, invoiceID).Return(&entity.Invoice{ID: invoiceID}, nil).Once()
	m.payment.EXPECT().FindPaymentByID(mock.Anything, invoiceID, mock.Anything).Return(nil, repository.ErrPaymentNotFound).Once()

	err := newTestInvoiceService(m, nil).DeletePayment(context.Background(), userID, invoiceID, uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrPaymentNotFound))
}

func TestInvoiceService_GetPublicInvoice(t *testing.T) {
	m := newRepoMocks(t)
	shopID := uuid.New()
	invoice := &entity.Invoice{ID: uuid.New(), ProfileID: shopID, PublicToken: "abc123"}

	m.invoice.EXPECT().FindInvoiceByToken(mock.Anything, "abc123").Return(invoice, nil).Once()
	m.shop.EXPECT().FindShopByID(mock.Anything, shopID).Return(&entity.ShopProfile{ID: shopID, ShopName: "Nakshi Ghor"}, nil).Once()
	m.paymentMethod.EXPECT().ListPaymentMethods(mock.Anything, shopID, true).Return(nil, nil).Once()

	public, err := newTestInvoiceService(m, nil).GetPublicInvoice(context.Background(), " abc123 ")

	require.NoError(t, err)
	assert.Same(t, invoice, public.Invoice)
	assert.Equal(t, "Nakshi Ghor", public.Shop.ShopName)
	assert.NotNil(t, public.PaymentMethods)
	assert.Empty(t, public.PaymentMethods)
}

func TestInvoiceService_GetPublicInvoice_UnknownToken(t *testing.T) {
	m := newRepoMocks(t)
	m.invoice.EXPECT().FindInvoiceByToken(mock.Anything, "missing").Return(nil, repository.ErrInvoiceNotFound).Once()

	_, err := newTestInvoiceService(m, nil).GetPublicInvoice(context.Background(), "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrInvoiceNotFound))

	_, err = newTestInvoiceService(m, nil).GetPublicInvoice(context.Background(), "  ")
	assert.True(t, errors.Is(err, domainerrors.ErrInvoiceNotFound))
}

func TestInvoiceService_GenerateInvoiceQR(t *testing.T) {
	m := newRepoMocks(t)
	qr := mockSvc.NewMockQRCodeService(t)
	userID := uuid.New()
	shop := m.ownShop(userID)
	invoiceID := uuid.New()

	m.invoice.EXPECT().FindInvoiceByID(mock.Anything, shop.ID, invoiceID).
		Return(&entity.Invoice{ID: invoiceID, PublicToken: "tok42"}, nil).
		Once()
	qr.EXPECT().GenerateURLQR("https://cashmemo.test/invoice/tok42").Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

	png, err := newTestInvoiceService(m, qr).GenerateInvoiceQR(context.Background(), userID, invoiceID)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
