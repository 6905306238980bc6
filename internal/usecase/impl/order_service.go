package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "cashmemo/internal/delivery/context"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	txManager repository.TransactionManager
	repos     repository.RepositoryFactory
	quota     usecase.QuotaEngine
	logger    *slog.Logger
	now       func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
	Quota     usecase.QuotaEngine
	Logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		repos:     params.Repos,
		quota:     params.Quota,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID, input *usecase.ListOrdersInput) (*entity.PagedResult[*entity.Order], error) {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	if input.Status != "" && !input.Status.IsValid() {
		return nil, domainerrors.NewValidationError("status is not a valid order status")
	}

	page := normalizePage(input.Page)
	orders, total, err := srv.repos.OrderRepo().ListOrders(ctx, repository.OrderFilter{
		ProfileID: shop.ID,
		Status:    input.Status,
		Page:      page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return newPagedResult(orders, total, page), nil
}

func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	order, err := srv.repos.OrderRepo().FindOrderByID(ctx, shop.ID, orderID)
	if err != nil {
		return nil, mapRepoErr(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to find order")
	}

	return order, nil
}

// CreateOrder enforces the monthly order quota and inserts in the same transaction.
func (srv *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if input.DeliveryCharge < 0 || input.Discount < 0 {
		return nil, domainerrors.NewValidationError("delivery_charge and discount cannot be negative")
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		shop, err := resolveShop(ctx, repos, userID)
		if err != nil {
			return err
		}

		if err := srv.quota.Enforce(ctx, repos, shop.ID, entity.QuotaOrder); err != nil {
			return err
		}

		var customer *entity.Customer
		if input.CustomerID != nil {
			customer, err = repos.CustomerRepo().FindCustomerByID(ctx, shop.ID, *input.CustomerID)
			if err != nil {
				return mapRepoErr(err, repository.ErrCustomerNotFound, domainerrors.ErrCustomerNotFound, "failed to find customer for order")
			}
		}

		items, err := buildOrderItems(ctx, repos, shop.ID, input.Items, false)
		if err != nil {
			return err
		}

		order = &entity.Order{
			ProfileID:      shop.ID,
			CustomerID:     input.CustomerID,
			Status:         entity.OrderPending,
			Source:         entity.OrderSourceDashboard,
			Items:          items,
			DeliveryCharge: input.DeliveryCharge,
			Discount:       input.Discount,
			Note:           strings.TrimSpace(input.Note),
		}

		if err := insertOrder(ctx, repos, order, srv.now()); err != nil {
			return err
		}
		order.Customer = customer

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.String("orderID", order.ID.String()),
		slog.String("orderNumber", order.OrderNumber),
		slog.Float64("total", order.Total),
	)

	return order, nil
}

// buildOrderItems snapshots catalogue names and prices into order lines.
// Storefront orders may only reference active catalogue products.
func buildOrderItems(ctx context.Context, repos repository.RepositoryFactory, profileID uuid.UUID, inputs []usecase.OrderItemInput, storefront bool) ([]entity.OrderItem, error) {
	if len(inputs) == 0 {
		return nil, domainerrors.NewValidationError("at least one item is required")
	}

	productIDs := make([]uuid.UUID, 0, len(inputs))
	for _, input := range inputs {
		if input.ProductID != nil {
			productIDs = append(productIDs, *input.ProductID)
		}
	}

	products := make(map[uuid.UUID]*entity.Product, len(productIDs))
	if len(productIDs) > 0 {
		found, err := repos.ProductRepo().FindProductsByIDs(ctx, profileID, productIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load order products")
		}
		for _, product := range found {
			products[product.ID] = product
		}
	}

	items := make([]entity.OrderItem, 0, len(inputs))
	for _, input := range inputs {
		if input.Quantity <= 0 {
			return nil, domainerrors.NewValidationError("quantity must be at least 1")
		}

		if input.ProductID != nil {
			product, ok := products[*input.ProductID]
			if !ok || (storefront && !product.IsActive) {
				return nil, domainerrors.ErrProductNotFound
			}

			items = append(items, entity.OrderItem{
				ProductID:   &product.ID,
				ProductName: product.Name,
				UnitPrice:   product.EffectivePrice(),
				Quantity:    input.Quantity,
			})

			continue
		}

		name := strings.TrimSpace(input.Name)
		if storefront || name == "" || input.UnitPrice == nil || *input.UnitPrice < 0 {
			return nil, domainerrors.NewValidationError("each item needs a product_id, or a name and unit_price")
		}

		items = append(items, entity.OrderItem{
			ProductName: name,
			UnitPrice:   *input.UnitPrice,
			Quantity:    input.Quantity,
		})
	}

	return items, nil
}

func insertOrder(ctx context.Context, repos repository.RepositoryFactory, order *entity.Order, now time.Time) error {
	order.RecomputeTotals()
	order.OrderNumber = newDocumentNumber("ORD", now)

	if err := repos.OrderRepo().CreateOrder(ctx, order); err != nil {
		return mapRepoErr(err, repository.ErrCustomerNotFound, domainerrors.ErrCustomerNotFound, "failed to create order")
	}

	return nil
}

// newDocumentNumber builds a human-friendly reference such as ORD-240131-4F9A2C.
func newDocumentNumber(prefix string, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])

	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("060102"), suffix)
}

// UpdateOrderStatus applies one transition of the fulfilment state machine.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, userID, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.NewValidationError("status is not a valid order status")
	}

	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	order, err := srv.repos.OrderRepo().FindOrderByID(ctx, shop.ID, orderID)
	if err != nil {
		return nil, mapRepoErr(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to find order")
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrInvalidOrderTransition.WithDetails(fmt.Sprintf("cannot move from %s to %s", order.Status, status))
	}

	if err := srv.repos.OrderRepo().UpdateOrderStatus(ctx, shop.ID, orderID, status); err != nil {
		return nil, mapRepoErr(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to update order status")
	}
	order.Status = status

	return order, nil
}

func (srv *orderService) DeleteOrder(ctx context.Context, userID, orderID uuid.UUID) error {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return err
	}

	if err := srv.repos.OrderRepo().DeleteOrder(ctx, shop.ID, orderID); err != nil {
		return mapRepoErr(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to delete order")
	}

	return nil
}
