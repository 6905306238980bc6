package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"cashmemo/config"
	deliverycontext "cashmemo/internal/delivery/context"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/domain/service"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPaymentMethod = "cash"
	// Amounts are taka with paisa precision.
	amountEpsilon = 0.005
)

type invoiceService struct {
	txManager repository.TransactionManager
	repos     repository.RepositoryFactory
	qrCode    service.QRCodeService
	shopCfg   *config.ShopConfig
	logger    *slog.Logger
	now       func() time.Time
}

// InvoiceServiceParams holds dependencies for InvoiceService, injected by Fx.
type InvoiceServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewInvoiceService creates a new invoice service instance
func NewInvoiceService(params InvoiceServiceParams) usecase.InvoiceUsecase {
	var shopCfg *config.ShopConfig
	if params.Config != nil {
		shopCfg = params.Config.Shop
	}

	return &invoiceService{
		txManager: params.TxManager,
		repos:     params.Repos,
		qrCode:    params.QRCode,
		shopCfg:   shopCfg,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *invoiceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *invoiceService) ListInvoices(ctx context.Context, userID uuid.UUID, input *usecase.ListInvoicesInput) (*entity.PagedResult[*entity.Invoice], error) {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	switch input.Status {
	case "", entity.InvoiceUnpaid, entity.InvoicePartial, entity.InvoicePaid:
	default:
		return nil, domainerrors.NewValidationError("status must be unpaid, partial or paid")
	}

	page := normalizePage(input.Page)
	invoices, total, err := srv.repos.InvoiceRepo().ListInvoices(ctx, shop.ID, input.Status, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}

	return newPagedResult(invoices, total, page), nil
}

func (srv *invoiceService) GetInvoice(ctx context.Context, userID, invoiceID uuid.UUID) (*entity.Invoice, error) {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	return findInvoice(ctx, srv.repos, shop.ID, invoiceID)
}

func findInvoice(ctx context.Context, repos repository.RepositoryFactory, profileID, invoiceID uuid.UUID) (*entity.Invoice, error) {
	invoice, err := repos.InvoiceRepo().FindInvoiceByID(ctx, profileID, invoiceID)
	if err != nil {
		return nil, mapRepoErr(err, repository.ErrInvoiceNotFound, domainerrors.ErrInvoiceNotFound, "failed to find invoice")
	}

	return invoice, nil
}

// CreateInvoice issues a cash memo. When an order is given its lines, delivery
// charge, discount and customer are copied onto the memo.
func (srv *invoiceService) CreateInvoice(ctx context.Context, userID uuid.UUID, input *usecase.CreateInvoiceInput) (*entity.Invoice, error) {
	if input.Discount < 0 {
		return nil, domainerrors.NewValidationError("discount cannot be negative")
	}

	var invoice *entity.Invoice
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		shop, err := resolveShop(ctx, repos, userID)
		if err != nil {
			return err
		}

		invoice = &entity.Invoice{
			ProfileID:     shop.ID,
			CustomerName:  strings.TrimSpace(input.CustomerName),
			CustomerPhone: strings.TrimSpace(input.CustomerPhone),
			Discount:      input.Discount,
			DueDate:       input.DueDate,
			Note:          strings.TrimSpace(input.Note),
		}

		if input.OrderID != nil {
			if err := fillFromOrder(ctx, repos, invoice, *input.OrderID); err != nil {
				return err
			}
		}

		if input.CustomerID != nil {
			customer, err := repos.CustomerRepo().FindCustomerByID(ctx, shop.ID, *input.CustomerID)
			if err != nil {
				return mapRepoErr(err, repository.ErrCustomerNotFound, domainerrors.ErrCustomerNotFound, "failed to find invoice customer")
			}
			attachCustomer(invoice, customer)
		}

		if len(input.Items) > 0 {
			lines, err := invoiceLines(input.Items)
			if err != nil {
				return err
			}
			invoice.Items = lines
		}

		if len(invoice.Items) == 0 {
			return domainerrors.NewValidationError("at least one item is required")
		}
		if invoice.CustomerName == "" {
			return domainerrors.NewValidationError("customer_name is required")
		}

		now := srv.now()
		invoice.InvoiceNumber = newDocumentNumber("INV", now)
		invoice.PublicToken = newPublicToken()
		invoice.RecomputeTotals()
		invoice.RecomputeStatus()

		return errors.Wrap(repos.InvoiceRepo().CreateInvoice(ctx, invoice), "failed to create invoice")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Invoice created",
		slog.String("invoiceNumber", invoice.InvoiceNumber),
		slog.Float64("total", invoice.Total),
	)

	return invoice, nil
}

func fillFromOrder(ctx context.Context, repos repository.RepositoryFactory, invoice *entity.Invoice, orderID uuid.UUID) error {
	order, err := repos.OrderRepo().FindOrderByID(ctx, invoice.ProfileID, orderID)
	if err != nil {
		return mapRepoErr(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to find invoice order")
	}

	invoice.OrderID = &order.ID
	invoice.Discount += order.Discount
	for _, item := range order.Items {
		invoice.Items = append(invoice.Items, entity.InvoiceLine{
			Description: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	if order.DeliveryCharge > 0 {
		invoice.Items = append(invoice.Items, entity.InvoiceLine{
			Description: "Delivery charge",
			Quantity:    1,
			UnitPrice:   order.DeliveryCharge,
		})
	}

	if order.Customer != nil {
		attachCustomer(invoice, order.Customer)
	}

	return nil
}

// attachCustomer fills blank contact fields; explicit input wins.
func attachCustomer(invoice *entity.Invoice, customer *entity.Customer) {
	invoice.CustomerID = &customer.ID
	if invoice.CustomerName == "" {
		invoice.CustomerName = customer.Name
	}
	if invoice.CustomerPhone == "" {
		invoice.CustomerPhone = customer.Mobile
	}
}

func invoiceLines(inputs []usecase.InvoiceLineInput) ([]entity.InvoiceLine, error) {
	lines := make([]entity.InvoiceLine, 0, len(inputs))
	for _, input := range inputs {
		description := strings.TrimSpace(input.Description)
		if description == "" {
			return nil, domainerrors.NewValidationError("item description is required")
		}
		if input.Quantity <= 0 {
			return nil, domainerrors.NewValidationError("quantity must be at least 1")
		}
		if input.UnitPrice < 0 {
			return nil, domainerrors.NewValidationError("unit_price cannot be negative")
		}

		lines = append(lines, entity.InvoiceLine{
			Description: description,
			Quantity:    input.Quantity,
			UnitPrice:   input.UnitPrice,
		})
	}

	return lines, nil
}

func newPublicToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (srv *invoiceService) UpdateInvoice(ctx context.Context, userID, invoiceID uuid.UUID, input *usecase.UpdateInvoiceInput) (*entity.Invoice, error) {
	invoice, err := srv.GetInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	if input.DueDate != nil {
		invoice.DueDate = input.DueDate
	}
	assignString(&invoice.Note, input.Note)

	if err := srv.repos.InvoiceRepo().UpdateInvoice(ctx, invoice); err != nil {
		return nil, mapRepoErr(err, repository.ErrInvoiceNotFound, domainerrors.ErrInvoiceNotFound, "failed to update invoice")
	}

	return invoice, nil
}

func (srv *invoiceService) DeleteInvoice(ctx context.Context, userID, invoiceID uuid.UUID) error {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return err
	}

	if err := srv.repos.InvoiceRepo().DeleteInvoice(ctx, shop.ID, invoiceID); err != nil {
		return mapRepoErr(err, repository.ErrInvoiceNotFound, domainerrors.ErrInvoiceNotFound, "failed to delete invoice")
	}

	return nil
}

// GetPublicInvoice resolves the unauthenticated invoice link.
func (srv *invoiceService) GetPublicInvoice(ctx context.Context, token string) (*usecase.PublicInvoice, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.ErrInvoiceNotFound
	}

	invoice, err := srv.repos.InvoiceRepo().FindInvoiceByToken(ctx, token)
	if err != nil {
		return nil, mapRepoErr(err, repository.ErrInvoiceNotFound, domainerrors.ErrInvoiceNotFound, "failed to find invoice by token")
	}

	shop, err := srv.repos.ShopRepo().FindShopByID(ctx, invoice.ProfileID)
	if err != nil {
		return nil, mapRepoErr(err, repository.ErrShopNotFound, domainerrors.ErrShopNotFound, "failed to find invoice shop")
	}

	methods, err := srv.repos.PaymentMethodRepo().ListPaymentMethods(ctx, shop.ID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invoice payment methods")
	}

	return &usecase.PublicInvoice{
		Invoice:        invoice,
		Shop:           shop,
		PaymentMethods: nonNil(methods),
	}, nil
}

// GenerateInvoiceQR renders the public invoice link as a PNG.
func (srv *invoiceService) GenerateInvoiceQR(ctx context.Context, userID, invoiceID uuid.UUID) ([]byte, error) {
	invoice, err := srv.GetInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateURLQR(srv.shopCfg.InvoiceURL(invoice.PublicToken))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invoice QR code")
	}

	return png, nil
}

func (srv *invoiceService) ListPayments(ctx context.Context, userID, invoiceID uuid.UUID) ([]*entity.Payment, error) {
	invoice, err := srv.GetInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	payments, err := srv.repos.PaymentRepo().ListPaymentsByInvoice(ctx, invoice.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return nonNil(payments), nil
}

// CreatePayment records money received. The invoice row is locked so concurrent
// payments cannot push the paid amount past the total.
func (srv *invoiceService) CreatePayment(ctx context.Context, userID, invoiceID uuid.UUID, input *usecase.CreatePaymentInput) (*entity.Payment, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.NewValidationError("amount must be greater than zero")
	}

	var payment *entity.Payment
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		shop, err := resolveShop(ctx, repos, userID)
		if err != nil {
			return err
		}

		invoice, err := repos.InvoiceRepo().LockInvoiceByID(ctx, shop.ID, invoiceID)
		if err != nil {
			return mapRepoErr(err, repository.ErrInvoiceNotFound, domainerrors.ErrInvoiceNotFound, "failed to lock invoice")
		}

		if input.Amount > invoice.Balance()+amountEpsilon {
			return domainerrors.NewValidationError(fmt.Sprintf("amount exceeds the outstanding balance of %.2f", invoice.Balance()))
		}

		method := strings.ToLower(strings.TrimSpace(input.Method))
		if method == "" {
			method = defaultPaymentMethod
		}
		paidAt := srv.now()
		if input.PaidAt != nil {
			paidAt = *input.PaidAt
		}

		payment = &entity.Payment{
			InvoiceID: invoice.ID,
			ProfileID: shop.ID,
			Amount:    input.Amount,
			Method:    method,
			Reference: strings.TrimSpace(input.Reference),
			PaidAt:    paidAt,
		}
		if err := repos.PaymentRepo().CreatePayment(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to create payment")
		}

		return storePaidAmount(ctx, repos, invoice, invoice.PaidAmount+input.Amount)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Payment recorded",
		slog.String("invoiceID", invoiceID.String()),
		slog.Float64("amount", payment.Amount),
	)

	return payment, nil
}

func (srv *invoiceService) DeletePayment(ctx context.Context, userID, invoiceID, paymentID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		shop, err := resolveShop(ctx, repos, userID)
		if err != nil {
			return err
		}

		invoice, err := repos.InvoiceRepo().LockInvoiceByID(ctx, shop.ID, invoiceID)
		if err != nil {
			return mapRepoErr(err, repository.ErrInvoiceNotFound, domainerrors.ErrInvoiceNotFound, "failed to lock invoice")
		}

		payment, err := repos.PaymentRepo().FindPaymentByID(ctx, invoice.ID, paymentID)
		if err != nil {
			return mapRepoErr(err, repository.ErrPaymentNotFound, domainerrors.ErrPaymentNotFound, "failed to find payment")
		}

		if err := repos.PaymentRepo().DeletePayment(ctx, invoice.ID, payment.ID); err != nil {
			return mapRepoErr(err, repository.ErrPaymentNotFound, domainerrors.ErrPaymentNotFound, "failed to delete payment")
		}

		return storePaidAmount(ctx, repos, invoice, invoice.PaidAmount-payment.Amount)
	})
}

func storePaidAmount(ctx context.Context, repos repository.RepositoryFactory, invoice *entity.Invoice, paid float64) error {
	invoice.PaidAmount = math.Max(0, math.Round(paid*100)/100)
	invoice.RecomputeStatus()

	return errors.Wrap(
		repos.InvoiceRepo().UpdatePaidAmount(ctx, invoice.ID, invoice.PaidAmount, invoice.Status),
		"failed to update invoice paid amount",
	)
}
