package impl

import (
	"context"
	"testing"

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

type productFixture struct {
	repos   *repoMocks
	quota   *mockUsecase.MockQuotaEngine
	media   *mockSvc.MockMediaStore
	service usecase.ProductUsecase
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()

	f := &productFixture{
		repos: newRepoMocks(t),
		quota: mockUsecase.NewMockQuotaEngine(t),
		media: mockSvc.NewMockMediaStore(t),
	}
	f.service = NewProductService(ProductServiceParams{
		TxManager: f.repos.tx,
		Repos:     f.repos.factory,
		Quota:     f.quota,
		Media:     f.media,
		Logger:    newDiscardLogger(),
	})

	return f
}

func TestProductService_CreateProduct(t *testing.T) {
	f := newProductFixture(t)
	userID := uuid.New()
	shop := f.repos.ownShop(userID)
	categoryID := uuid.New()

	f.quota.EXPECT().Enforce(mock.Anything, f.repos.factory, shop.ID, entity.QuotaProduct).Return(nil).Once()
	f.repos.category.EXPECT().FindCategoryByID(mock.Anything, shop.ID, categoryID).Return(&entity.Category{ID: categoryID}, nil).Once()
	f.repos.product.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		return p.ProfileID == shop.ID && p.Name == "Panjabi" && p.IsActive
	})).Return(nil).Once()
	f.repos.category.EXPECT().AdjustProductCount(mock.Anything, categoryID, 1).Return(nil).Once()

	product, err := f.service.CreateProduct(context.Background(), userID, &usecase.ProductInput{
		Name:       ptr(" Panjabi "),
		Price:      ptr(1450.0),
		CategoryID: &categoryID,
	})

	require.NoError(t, err)
	assert.InDelta(t, 1450, product.Price, 0.001)
}

func TestProductService_CreateProduct_Refusals(t *testing.T) {
	t.Run("quota", func(t *testing.T) {
		f := newProductFixture(t)
		userID := uuid.New()
		f.repos.ownShop(userID)
		f.quota.EXPECT().Enforce(mock.Anything, mock.Anything, mock.Anything, entity.QuotaProduct).Return(domainerrors.ErrQuotaExceeded).Once()

		_, err := f.service.CreateProduct(context.Background(), userID, &usecase.ProductInput{Name: ptr("Lungi"), Price: ptr(300.0)})

		assert.True(t, errors.Is(err, domainerrors.ErrQuotaExceeded))
	})

	t.Run("category of another shop", func(t *testing.T) {
		f := newProductFixture(t)
		userID := uuid.New()
		shop := f.repos.ownShop(userID)
		foreign := uuid.New()
		f.quota.EXPECT().Enforce(mock.Anything, mock.Anything, shop.ID, entity.QuotaProduct).Return(nil).Once()
		f.repos.category.EXPECT().FindCategoryByID(mock.Anything, shop.ID, foreign).Return(nil, repository.ErrCategoryNotFound).Once()

		_, err := f.service.CreateProduct(context.Background(), userID, &usecase.ProductInput{Name: ptr("Lungi"), Price: ptr(300.0), CategoryID: &foreign})

		assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
	})

	t.Run("validation", func(t *testing.T) {
		f := newProductFixture(t)

		_, err := f.service.CreateProduct(context.Background(), uuid.New(), &usecase.ProductInput{Price: ptr(1.0)})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

		_, err = f.service.CreateProduct(context.Background(), uuid.New(), &usecase.ProductInput{Name: ptr("X")})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

		_, err = f.service.CreateProduct(context.Background(), uuid.New(), &usecase.ProductInput{Name: ptr("X"), Price: ptr(-1.0)})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestProductService_UpdateProduct_MovesCategoryAndDropsOldImage(t *testing.T) {
	f := newProductFixture(t)
	userID := uuid.New()
	shop := f.repos.ownShop(userID)
	productID, oldCategory, newCategory := uuid.New(), uuid.New(), uuid.New()

	f.repos.product.EXPECT().FindProductByID(mock.Anything, shop.ID, productID).Return(&entity.Product{
		ID:            productID,
		ProfileID:     shop.ID,
		Name:          "Panjabi",
		CategoryID:    &oldCategory,
		ImagePublicID: "products/old",
	}, nil).Once()
	f.repos.category.EXPECT().FindCategoryByID(mock.Anything, shop.ID, newCategory).Return(&entity.Category{ID: newCategory}, nil).Once()
	f.repos.product.EXPECT().UpdateProduct(mock.Anything, mock.Anything).Return(nil).Once()
	f.repos.category.EXPECT().AdjustProductCount(mock.Anything, oldCategory, -1).Return(nil).Once()
	f.repos.category.EXPECT().AdjustProductCount(mock.Anything, newCategory, 1).Return(nil).Once()
	f.media.EXPECT().Delete(mock.Anything, shop.ID.String(), "products/old").Return(errors.New("media down")).Once()

	product, err := f.service.UpdateProduct(context.Background(), userID, productID, &usecase.ProductInput{
		CategoryID:    &newCategory,
		ImageURL:      ptr("https://cdn.test/new.png"),
		ImagePublicID: ptr("products/new"),
	})

	require.NoError(t, err)
	assert.Equal(t, newCategory, *product.CategoryID)
	assert.Equal(t, "products/new", product.ImagePublicID)
}

func TestProductService_DeleteProduct(t *testing.T) {
	f := newProductFixture(t)
	userID := uuid.New()
	shop := f.repos.ownShop(userID)
	productID := uuid.New()

	f.repos.product.EXPECT().FindProductByID(mock.Anything, shop.ID, productID).
		Return(&entity.Product{ID: productID, ImagePublicID: "products/p1"}, nil).
		Once()
	f.repos.product.EXPECT().DeleteProduct(mock.Anything, shop.ID, productID).Return(nil).Once()
	f.media.EXPECT().Delete(mock.Anything, shop.ID.String(), "products/p1").Return(nil).Once()

	require.NoError(t, f.service.DeleteProduct(context.Background(), userID, productID))
}

func TestProductService_DeleteProduct_ForeignImageIsLeftAlone(t *testing.T) {
	f := newProductFixture(t)
	userID := uuid.New()
	shop := f.repos.ownShop(userID)
	productID := uuid.New()

	f.repos.product.EXPECT().FindProductByID(mock.Anything, shop.ID, productID).
		Return(&entity.Product{ID: productID, ImagePublicID: "cashmemo/other-shop/2025/01/a.png"}, nil).
		Once()
	f.repos.product.EXPECT().DeleteProduct(mock.Anything, shop.ID, productID).Return(nil).Once()
	f.media.EXPECT().Delete(mock.Anything, shop.ID.String(), "cashmemo/other-shop/2025/01/a.png").Return(service.ErrMediaNotFound).Once()

	require.NoError(t, f.service.DeleteProduct(context.Background(), userID, productID))
}

func TestCustomerService_CreateCustomer_DuplicateMobile(t *testing.T) {
	m := newRepoMocks(t)
	userID := uuid.New()
	m.ownShop(userID)
	srv := NewCustomerService(CustomerServiceParams{Repos: m.factory, Logger: newDiscardLogger()})

	m.customer.EXPECT().CreateCustomer(mock.Anything, mock.Anything).Return(repository.ErrDuplicateCustomerMobile).Once()

	_, err := srv.CreateCustomer(context.Background(), userID, &usecase.CustomerInput{Name: "Karim", Mobile: "01811000000"})

	assert.True(t, errors.Is(err, domainerrors.ErrConflict))

	_, err = srv.CreateCustomer(context.Background(), userID, &usecase.CustomerInput{Name: "Karim"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
