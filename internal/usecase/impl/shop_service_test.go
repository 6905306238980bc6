package impl

import (
	"context"
	"testing"
	"time"

	"cashmemo/config"
	"cashmemo/internal/domain/constants"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/domain/service"
	mockSvc "cashmemo/internal/mocks/service"
	mockUsecase "cashmemo/internal/mocks/usecase"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shopFixture struct {
	repos     *repoMocks
	quota     *mockUsecase.MockQuotaEngine
	qr        *mockSvc.MockQRCodeService
	publisher *mockSvc.MockEventPublisher
	service   *shopService
}

func newShopFixture(t *testing.T) *shopFixture {
	t.Helper()

	f := &shopFixture{
		repos:     newRepoMocks(t),
		quota:     mockUsecase.NewMockQuotaEngine(t),
		qr:        mockSvc.NewMockQRCodeService(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	f.service = &shopService{
		txManager: f.repos.tx,
		repos:     f.repos.factory,
		quota:     f.quota,
		qrCode:    f.qr,
		publisher: f.publisher,
		shopCfg:   &config.ShopConfig{PublicBaseURL: "https://cashmemo.test"},
		logger:    newDiscardLogger(),
		now:       func() time.Time { return time.Date(2024, 4, 14, 8, 0, 0, 0, dhaka) },
	}

	return f
}

func TestShopService_UpdateMyShop(t *testing.T) {
	t.Run("normalises slug and applies fields", func(t *testing.T) {
		f := newShopFixture(t)
		userID := uuid.New()
		shop := f.repos.ownShop(userID)

		f.repos.shop.EXPECT().ExistsShopSlug(mock.Anything, "pohela-boishakh-sale", shop.ID).Return(false, nil).Once()
		f.repos.shop.EXPECT().UpdateShop(mock.Anything, shop).Return(nil).Once()

		updated, err := f.service.UpdateMyShop(context.Background(), userID, &usecase.UpdateShopInput{
			ShopName: ptr("  Boishakhi Bazar "),
			ShopSlug: ptr("Pohela Boishakh  Sale!"),
			Phone:    ptr("01711000000"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Boishakhi Bazar", updated.ShopName)
		assert.Equal(t, "pohela-boishakh-sale", updated.ShopSlug)
		assert.Equal(t, "01711000000", updated.Phone)
	})

	t.Run("unchanged slug skips uniqueness check", func(t *testing.T) {
		f := newShopFixture(t)
		userID := uuid.New()
		shop := f.repos.ownShop(userID)

		f.repos.shop.EXPECT().UpdateShop(mock.Anything, shop).Return(nil).Once()

		_, err := f.service.UpdateMyShop(context.Background(), userID, &usecase.UpdateShopInput{ShopSlug: ptr("Nakshi Ghor")})

		require.NoError(t, err)
	})

	t.Run("slug taken", func(t *testing.T) {
		f := newShopFixture(t)
		userID := uuid.New()
		f.repos.ownShop(userID)

		f.repos.shop.EXPECT().ExistsShopSlug(mock.Anything, "rupa", mock.Anything).Return(true, nil).Once()

		_, err := f.service.UpdateMyShop(context.Background(), userID, &usecase.UpdateShopInput{ShopSlug: ptr("rupa")})

		assert.True(t, errors.Is(err, domainerrors.ErrShopSlugTaken))
	})

	t.Run("slug taken by concurrent update", func(t *testing.T) {
		f := newShopFixture(t)
		userID := uuid.New()
		f.repos.ownShop(userID)

		f.repos.shop.EXPECT().ExistsShopSlug(mock.Anything, "rupa", mock.Anything).Return(false, nil).Once()
		f.repos.shop.EXPECT().UpdateShop(mock.Anything, mock.Anything).Return(repository.ErrShopSlugTaken).Once()

		_, err := f.service.UpdateMyShop(context.Background(), userID, &usecase.UpdateShopInput{ShopSlug: ptr("rupa")})

		assert.True(t, errors.Is(err, domainerrors.ErrShopSlugTaken))
	})

	t.Run("blank name and symbol-only slug", func(t *testing.T) {
		f := newShopFixture(t)
		userID := uuid.New()
		f.repos.ownShop(userID)

		_, err := f.service.UpdateMyShop(context.Background(), userID, &usecase.UpdateShopInput{ShopName: ptr("   ")})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

		_, err = f.service.UpdateMyShop(context.Background(), userID, &usecase.UpdateShopInput{ShopSlug: ptr("!!!")})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestShopService_GenerateShopQR(t *testing.T) {
	f := newShopFixture(t)
	userID := uuid.New()
	f.repos.ownShop(userID)

	f.qr.EXPECT().GenerateURLQR("https://cashmemo.test/nakshi-ghor").Return([]byte("png"), nil).Once()

	png, err := f.service.GenerateShopQR(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestShopService_PlaceStorefrontOrder(t *testing.T) {
	f := newShopFixture(t)
	shop := &entity.ShopProfile{ID: uuid.New(), UserID: uuid.New(), ShopSlug: "nakshi-ghor"}
	product := &entity.Product{ID: uuid.New(), ProfileID: shop.ID, Name: "Clay pot", Price: 250, IsActive: true}

	f.repos.shop.EXPECT().FindShopBySlug(mock.Anything, "nakshi-ghor").Return(shop, nil).Once()
	f.quota.EXPECT().Enforce(mock.Anything, f.repos.factory, shop.ID, entity.QuotaOrder).Return(nil).Once()
	f.repos.customer.EXPECT().FindCustomerByMobile(mock.Anything, shop.ID, "01911000000").Return(nil, repository.ErrCustomerNotFound).Once()
	f.repos.customer.EXPECT().CreateCustomer(mock.Anything, mock.AnythingOfType("*entity.Customer")).
		Run(func(_ context.Context, customer *entity.Customer) { customer.ID = uuid.New() }).
		Return(nil).
		Once()
	f.repos.product.EXPECT().FindProductsByIDs(mock.Anything, shop.ID, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil).Once()
	f.repos.order.EXPECT().CreateOrder(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { order.ID = uuid.New() }).
		Return(nil).
		Once()
	f.repos.notification.EXPECT().CreateNotification(mock.Anything, mock.MatchedBy(func(n *entity.Notification) bool {
		return n.UserID == shop.UserID && n.Type == entity.NotificationNewOrder
	})).Return(nil).Once()
	f.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(event *service.DomainEvent) bool {
		return event.Type == constants.EventOrderCreated && event.UserID == shop.UserID.String()
	})).Return(errors.New("topic missing")).Once()

	order, err := f.service.PlaceStorefrontOrder(context.Background(), " Nakshi-Ghor ", &usecase.StorefrontOrderInput{
		Customer: usecase.StorefrontCustomer{Name: "Sumi", Mobile: "01911000000", Address: "Mirpur 10"},
		Items:    []usecase.StorefrontOrderItem{{ProductID: product.ID, Quantity: 3}},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderSourceStorefront, order.Source)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.InDelta(t, 750, order.Total, 0.001)
	require.NotNil(t, order.Customer)
	assert.Equal(t, "Mirpur 10", order.Customer.Address)
	assert.Equal(t, order.Customer.ID, *order.CustomerID)
	assert.Equal(t, "Sumi", order.DeliveryName)
	assert.Equal(t, "Mirpur 10", order.DeliveryAddress)
}

func TestShopService_PlaceStorefrontOrder_ReusesCustomerWithoutChangingIt(t *testing.T) {
	f := newShopFixture(t)
	shop := &entity.ShopProfile{ID: uuid.New(), UserID: uuid.New(), ShopSlug: "rupa"}
	product := &entity.Product{ID: uuid.New(), Name: "Bangle", Price: 90, IsActive: true}
	existing := &entity.Customer{ID: uuid.New(), ProfileID: shop.ID, Name: "Rupa Akter", Mobile: "01511000000", Email: "rupa@example.com", Address: "Uttara"}
	stored := *existing

	f.repos.shop.EXPECT().FindShopBySlug(mock.Anything, "rupa").Return(shop, nil).Once()
	f.quota.EXPECT().Enforce(mock.Anything, mock.Anything, shop.ID, entity.QuotaOrder).Return(nil).Once()
	f.repos.customer.EXPECT().FindCustomerByMobile(mock.Anything, shop.ID, "01511000000").Return(existing, nil).Once()
	f.repos.product.EXPECT().FindProductsByIDs(mock.Anything, shop.ID, mock.Anything).Return([]*entity.Product{product}, nil).Once()
	f.repos.order.EXPECT().CreateOrder(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil).Once()
	f.repos.notification.EXPECT().CreateNotification(mock.Anything, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	order, err := f.service.PlaceStorefrontOrder(context.Background(), "rupa", &usecase.StorefrontOrderInput{
		Customer: usecase.StorefrontCustomer{Name: "Someone Else", Mobile: "01511000000", Email: "other@example.com", Address: "Somewhere new"},
		Items:    []usecase.StorefrontOrderItem{{ProductID: product.ID, Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, *order.CustomerID)
	assert.Equal(t, stored, *existing, "storefront checkout must not rewrite the seller's customer")
	f.repos.customer.AssertNotCalled(t, "UpdateCustomer", mock.Anything, mock.Anything)

	assert.Equal(t, "Someone Else", order.DeliveryName)
	assert.Equal(t, "01511000000", order.DeliveryMobile)
	assert.Equal(t, "Somewhere new", order.DeliveryAddress)
}

func TestShopService_PlaceStorefrontOrder_Refusals(t *testing.T) {
	t.Run("missing contact", func(t *testing.T) {
		f := newShopFixture(t)

		_, err := f.service.PlaceStorefrontOrder(context.Background(), "rupa", &usecase.StorefrontOrderInput{
			Customer: usecase.StorefrontCustomer{Name: "Sumi"},
		})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("unknown shop", func(t *testing.T) {
		f := newShopFixture(t)
		f.repos.shop.EXPECT().FindShopBySlug(mock.Anything, "ghost").Return(nil, repository.ErrShopNotFound).Once()

		_, err := f.service.PlaceStorefrontOrder(context.Background(), "ghost", &usecase.StorefrontOrderInput{
			Customer: usecase.StorefrontCustomer{Name: "Sumi", Mobile: "019"},
		})

		assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
	})

	t.Run("inactive product", func(t *testing.T) {
		f := newShopFixture(t)
		shop := &entity.ShopProfile{ID: uuid.New(), UserID: uuid.New(), ShopSlug: "rupa"}
		hidden := &entity.Product{ID: uuid.New(), Name: "Draft", Price: 10, IsActive: false}

		f.repos.shop.EXPECT().FindShopBySlug(mock.Anything, "rupa").Return(shop, nil).Once()
		f.quota.EXPECT().Enforce(mock.Anything, mock.Anything, shop.ID, entity.QuotaOrder).Return(nil).Once()
		f.repos.customer.EXPECT().FindCustomerByMobile(mock.Anything, shop.ID, "019").Return(nil, repository.ErrCustomerNotFound).Once()
		f.repos.customer.EXPECT().CreateCustomer(mock.Anything, mock.Anything).Return(nil).Once()
		f.repos.product.EXPECT().FindProductsByIDs(mock.Anything, shop.ID, mock.Anything).Return([]*entity.Product{hidden}, nil).Once()

		_, err := f.service.PlaceStorefrontOrder(context.Background(), "rupa", &usecase.StorefrontOrderInput{
			Customer: usecase.StorefrontCustomer{Name: "Sumi", Mobile: "019"},
			Items:    []usecase.StorefrontOrderItem{{ProductID: hidden.ID, Quantity: 1}},
		})

		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	})

	t.Run("monthly quota reached", func(t *testing.T) {
		f := newShopFixture(t)
		shop := &entity.ShopProfile{ID: uuid.New(), UserID: uuid.New(), ShopSlug: "rupa"}

		f.repos.shop.EXPECT().FindShopBySlug(mock.Anything, "rupa").Return(shop, nil).Once()
		f.quota.EXPECT().Enforce(mock.Anything, mock.Anything, shop.ID, entity.QuotaOrder).Return(domainerrors.ErrQuotaExceeded).Once()

		_, err := f.service.PlaceStorefrontOrder(context.Background(), "rupa", &usecase.StorefrontOrderInput{
			Customer: usecase.StorefrontCustomer{Name: "Sumi", Mobile: "019"},
			Items:    []usecase.StorefrontOrderItem{{ProductID: uuid.New(), Quantity: 1}},
		})

		assert.True(t, errors.Is(err, domainerrors.ErrQuotaExceeded))
	})
}

func TestShopService_GetPublicShop(t *testing.T) {
	f := newShopFixture(t)
	shop := &entity.ShopProfile{ID: uuid.New(), ShopSlug: "rupa"}

	f.repos.shop.EXPECT().FindShopBySlug(mock.Anything, "rupa").Return(shop, nil).Once()
	f.repos.category.EXPECT().ListCategories(mock.Anything, shop.ID).Return(nil, nil).Once()
	f.repos.product.EXPECT().ListProducts(mock.Anything, mock.MatchedBy(func(filter repository.ProductFilter) bool {
		return filter.ProfileID == shop.ID && filter.ActiveOnly
	})).Return([]*entity.Product{{ID: uuid.New(), Name: "Bangle", IsActive: true}}, int64(1), nil).Once()
	f.repos.paymentMethod.EXPECT().ListPaymentMethods(mock.Anything, shop.ID, true).Return(nil, nil).Once()

	public, err := f.service.GetPublicShop(context.Background(), "RUPA")

	require.NoError(t, err)
	assert.Same(t, shop, public.Shop)
	assert.NotNil(t, public.Categories)
	assert.Len(t, public.Products, 1)
	assert.NotNil(t, public.PaymentMethods)
}

func TestShopService_GetPublicProduct_HidesInactive(t *testing.T) {
	f := newShopFixture(t)
	shop := &entity.ShopProfile{ID: uuid.New(), ShopSlug: "rupa"}
	productID := uuid.New()

	f.repos.shop.EXPECT().FindShopBySlug(mock.Anything, "rupa").Return(shop, nil).Once()
	f.repos.product.EXPECT().FindProductByID(mock.Anything, shop.ID, productID).
		Return(&entity.Product{ID: productID, IsActive: false}, nil).
		Once()

	_, err := f.service.GetPublicProduct(context.Background(), "rupa", productID)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
