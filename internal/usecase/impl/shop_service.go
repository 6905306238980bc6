package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"cashmemo/config"
	deliverycontext "cashmemo/internal/delivery/context"
	"cashmemo/internal/domain/constants"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/domain/service"
	"cashmemo/internal/usecase"
	"cashmemo/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type shopService struct {
	txManager repository.TransactionManager
	repos     repository.RepositoryFactory
	quota     usecase.QuotaEngine
	qrCode    service.QRCodeService
	publisher service.EventPublisher
	shopCfg   *config.ShopConfig
	logger    *slog.Logger
	now       func() time.Time
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
	Quota     usecase.QuotaEngine
	QRCode    service.QRCodeService
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewShopService creates a new shop service instance
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	var shopCfg *config.ShopConfig
	if params.Config != nil {
		shopCfg = params.Config.Shop
	}

	return &shopService{
		txManager: params.TxManager,
		repos:     params.Repos,
		quota:     params.Quota,
		qrCode:    params.QRCode,
		publisher: params.Publisher,
		shopCfg:   shopCfg,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *shopService) GetMyShop(ctx context.Context, userID uuid.UUID) (*entity.ShopProfile, error) {
	return resolveShop(ctx, srv.repos, userID)
}

// UpdateMyShop applies the provided fields. A new slug is normalised and must be unused.
func (srv *shopService) UpdateMyShop(ctx context.Context, userID uuid.UUID, input *usecase.UpdateShopInput) (*entity.ShopProfile, error) {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	if input.ShopName != nil {
		name := strings.TrimSpace(*input.ShopName)
		if name == "" {
			return nil, domainerrors.NewValidationError("shop_name cannot be empty")
		}
		shop.ShopName = name
	}

	if input.ShopSlug != nil {
		slug := util.Slugify(*input.ShopSlug)
		if slug == "" {
			return nil, domainerrors.NewValidationError("shop_slug must contain letters or digits")
		}

		if slug != shop.ShopSlug {
			taken, err := srv.repos.ShopRepo().ExistsShopSlug(ctx, slug, shop.ID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to check shop slug")
			}
			if taken {
				return nil, domainerrors.ErrShopSlugTaken
			}
			shop.ShopSlug = slug
		}
	}

	assignString(&shop.Description, input.Description)
	assignString(&shop.LogoURL, input.LogoURL)
	assignString(&shop.Phone, input.Phone)
	assignString(&shop.Address, input.Address)
	assignString(&shop.FacebookURL, input.FacebookURL)
	if input.CustomTheme != nil {
		shop.CustomTheme = input.CustomTheme
	}

	if err := srv.repos.ShopRepo().UpdateShop(ctx, shop); err != nil {
		return nil, mapRepoErr(err, repository.ErrShopSlugTaken, domainerrors.ErrShopSlugTaken, "failed to update shop")
	}

	return shop, nil
}

func assignString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

// GenerateShopQR renders the public storefront URL as a PNG.
func (srv *shopService) GenerateShopQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateURLQR(srv.shopCfg.StorefrontURL(shop.ShopSlug))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate shop QR code")
	}

	return png, nil
}

func (srv *shopService) findPublicShop(ctx context.Context, repos repository.RepositoryFactory, slug string) (*entity.ShopProfile, error) {
	shop, err := repos.ShopRepo().FindShopBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		return nil, mapRepoErr(err, repository.ErrShopNotFound, domainerrors.ErrShopNotFound, "failed to find shop by slug")
	}

	return shop, nil
}

// GetPublicShop assembles the storefront: the shop, its categories, active products and payment methods.
func (srv *shopService) GetPublicShop(ctx context.Context, slug string) (*usecase.PublicShop, error) {
	shop, err := srv.findPublicShop(ctx, srv.repos, slug)
	if err != nil {
		return nil, err
	}

	categories, err := srv.repos.CategoryRepo().ListCategories(ctx, shop.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list storefront categories")
	}

	products, _, err := srv.repos.ProductRepo().ListProducts(ctx, repository.ProductFilter{
		ProfileID:  shop.ID,
		ActiveOnly: true,
		Page:       entity.Page{Limit: constants.MaxPageSize},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list storefront products")
	}

	methods, err := srv.repos.PaymentMethodRepo().ListPaymentMethods(ctx, shop.ID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list storefront payment methods")
	}

	return &usecase.PublicShop{
		Shop:           shop,
		Categories:     nonNil(categories),
		Products:       nonNil(products),
		PaymentMethods: nonNil(methods),
	}, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}

// GetPublicProduct returns an active product of the shop. Inactive products look missing.
func (srv *shopService) GetPublicProduct(ctx context.Context, slug string, productID uuid.UUID) (*entity.Product, error) {
	shop, err := srv.findPublicShop(ctx, srv.repos, slug)
	if err != nil {
		return nil, err
	}

	product, err := srv.repos.ProductRepo().FindProductByID(ctx, shop.ID, productID)
	if err != nil {
		return nil, mapRepoErr(err, repository.ErrProductNotFound, domainerrors.ErrProductNotFound, "failed to find product")
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}

// PlaceStorefrontOrder records a guest checkout. The order counts against the
// shop's monthly quota exactly like a dashboard order.
func (srv *shopService) PlaceStorefrontOrder(ctx context.Context, slug string, input *usecase.StorefrontOrderInput) (*entity.Order, error) {
	name := strings.TrimSpace(input.Customer.Name)
	mobile := strings.TrimSpace(input.Customer.Mobile)
	if name == "" || mobile == "" {
		return nil, domainerrors.NewValidationError("customer name and mobile are required")
	}

	items := make([]usecase.OrderItemInput, 0, len(input.Items))
	for _, item := range input.Items {
		productID := item.ProductID
		items = append(items, usecase.OrderItemInput{ProductID: &productID, Quantity: item.Quantity})
	}

	var (
		order *entity.Order
		shop  *entity.ShopProfile
	)
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		shop, err = srv.findPublicShop(ctx, repos, slug)
		if err != nil {
			return err
		}

		if err := srv.quota.Enforce(ctx, repos, shop.ID, entity.QuotaOrder); err != nil {
			return err
		}

		address := strings.TrimSpace(input.Customer.Address)
		customer, err := findOrCreateCustomer(ctx, repos, &entity.Customer{
			ProfileID: shop.ID,
			Name:      name,
			Mobile:    mobile,
			Email:     strings.TrimSpace(input.Customer.Email),
			Address:   address,
		})
		if err != nil {
			return err
		}

		lines, err := buildOrderItems(ctx, repos, shop.ID, items, true)
		if err != nil {
			return err
		}

		order = &entity.Order{
			ProfileID:       shop.ID,
			CustomerID:      &customer.ID,
			Status:          entity.OrderPending,
			Source:          entity.OrderSourceStorefront,
			Items:           lines,
			Note:            strings.TrimSpace(input.Note),
			DeliveryName:    name,
			DeliveryMobile:  mobile,
			DeliveryAddress: address,
		}
		if err := insertOrder(ctx, repos, order, srv.now()); err != nil {
			return err
		}
		order.Customer = customer

		return repos.NotificationRepo().CreateNotification(ctx, newOrderNotification(shop.UserID, order))
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Storefront order placed",
		slog.String("shopSlug", shop.ShopSlug),
		slog.String("orderNumber", order.OrderNumber),
		slog.Float64("total", order.Total),
	)

	srv.publishOrderCreated(ctx, shop, order)

	return order, nil
}

// findOrCreateCustomer matches storefront buyers by mobile within the profile.
// A matched customer is returned as stored; checkout details stay on the order.
func findOrCreateCustomer(ctx context.Context, repos repository.RepositoryFactory, candidate *entity.Customer) (*entity.Customer, error) {
	existing, err := repos.CustomerRepo().FindCustomerByMobile(ctx, candidate.ProfileID, candidate.Mobile)
	switch {
	case err == nil:
		return existing, nil
	case errors.Is(err, repository.ErrCustomerNotFound):
		if err := repos.CustomerRepo().CreateCustomer(ctx, candidate); err != nil {
			return nil, errors.Wrap(err, "failed to create storefront customer")
		}

		return candidate, nil
	default:
		return nil, errors.Wrap(err, "failed to find customer by mobile")
	}
}

func newOrderNotification(userID uuid.UUID, order *entity.Order) *entity.Notification {
	return &entity.Notification{
		UserID:  userID,
		Type:    entity.NotificationNewOrder,
		Title:   "New storefront order",
		Message: "Order " + order.OrderNumber + " was placed on your storefront",
	}
}

func (srv *shopService) publishOrderCreated(ctx context.Context, shop *entity.ShopProfile, order *entity.Order) {
	note := newOrderNotification(shop.UserID, order)
	event := &service.DomainEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.NewString(),
		Type:      constants.EventOrderCreated,
		UserID:    shop.UserID.String(),
		Title:     note.Title,
		Body:      note.Message,
		Data: map[string]string{
			"order_id":     order.ID.String(),
			"order_number": order.OrderNumber,
		},
	}

	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("orderNumber", order.OrderNumber),
			slog.Any("error", err),
		)
	}
}
