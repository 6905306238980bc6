package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	mockUsecase "cashmemo/internal/mocks/usecase"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCatalogHandler(t *testing.T) (*CatalogHandler, *mockUsecase.MockCategoryUsecase, *mockUsecase.MockProductUsecase) {
	t.Helper()

	categoryUC := mockUsecase.NewMockCategoryUsecase(t)
	productUC := mockUsecase.NewMockProductUsecase(t)

	return NewCatalogHandler(CatalogHandlerParams{CategoryUC: categoryUC, ProductUC: productUC}), categoryUC, productUC
}

func TestCatalogHandler_CreateCategory(t *testing.T) {
	h, categoryUC, _ := newTestCatalogHandler(t)
	userID := uuid.New()
	categoryID := uuid.New()

	categoryUC.EXPECT().
		CreateCategory(mock.Anything, userID, &usecase.CategoryInput{Name: "Sarees", Description: "Cotton and silk"}).
		Return(&entity.Category{ID: categoryID, Name: "Sarees"}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/categories", `{"name":"Sarees","description":"Cotton and silk"}`, entity.UserPrincipal(userID))

	require.NoError(t, h.CreateCategory(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var category entity.Category
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &category))
	assert.Equal(t, categoryID, category.ID)
}

func TestCatalogHandler_CreateCategory_QuotaExceeded(t *testing.T) {
	h, categoryUC, _ := newTestCatalogHandler(t)

	categoryUC.EXPECT().CreateCategory(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrQuotaExceeded.WithDetails("the Free plan allows 5 categories"))

	c, _ := newTestContext(http.MethodPost, "/api/v1/categories", `{"name":"Shoes"}`, entity.UserPrincipal(uuid.New()))

	err := h.CreateCategory(c)
	require.ErrorIs(t, err, domainerrors.ErrQuotaExceeded)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "the Free plan allows 5 categories", appErr.Details())
}

func TestCatalogHandler_CreateCategory_RequiresName(t *testing.T) {
	h, _, _ := newTestCatalogHandler(t)

	c, _ := newTestContext(http.MethodPost, "/api/v1/categories", `{"description":"no name"}`, entity.UserPrincipal(uuid.New()))

	assert.ErrorIs(t, h.CreateCategory(c), domainerrors.ErrValidationFailed)
}

func TestCatalogHandler_GetProduct_BadID(t *testing.T) {
	h, _, _ := newTestCatalogHandler(t)

	c, _ := newTestContext(http.MethodGet, "/api/v1/products/xyz", "", entity.UserPrincipal(uuid.New()))
	c.SetParamNames("id")
	c.SetParamValues("xyz")

	assert.ErrorIs(t, h.GetProduct(c), domainerrors.ErrValidationFailed)
}

func TestProductRequest_ToInput(t *testing.T) {
	categoryID := uuid.New()
	raw := categoryID.String()
	empty := ""

	withCategory := (&ProductRequest{CategoryID: &raw}).toInput()
	require.NotNil(t, withCategory.CategoryID)
	assert.Equal(t, categoryID, *withCategory.CategoryID)
	assert.False(t, withCategory.ClearCategory)

	cleared := (&ProductRequest{CategoryID: &empty}).toInput()
	assert.Nil(t, cleared.CategoryID)
	assert.True(t, cleared.ClearCategory)

	untouched := (&ProductRequest{}).toInput()
	assert.Nil(t, untouched.CategoryID)
	assert.False(t, untouched.ClearCategory)
}
