package handler

import (
	"net/http"
	"testing"
	"time"

	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	mockUsecase "cashmemo/internal/mocks/usecase"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportHandler_RangeQuery(t *testing.T) {
	now := time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)
	h := &ReportHandler{now: func() time.Time { return now }}

	c, _ := newTestContext(http.MethodGet, "/api/v1/reports/revenue", "", entity.Principal{})
	window, err := h.rangeQuery(c)
	require.NoError(t, err)
	assert.Equal(t, now, window.To)
	assert.Equal(t, time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), window.From)

	c, _ = newTestContext(http.MethodGet, "/api/v1/reports/revenue?from=2024-02-01&to=2024-05-01", "", entity.Principal{})
	window, err = h.rangeQuery(c)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), window.From)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), window.To)

	c, _ = newTestContext(http.MethodGet, "/api/v1/reports/revenue?from=yesterday", "", entity.Principal{})
	_, err = h.rangeQuery(c)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReportHandler_TopProducts(t *testing.T) {
	reportUC := mockUsecase.NewMockReportUsecase(t)
	h := NewReportHandler(ReportHandlerParams{ReportUC: reportUC})
	now := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }
	userID := uuid.New()

	reportUC.EXPECT().
		TopSellingProducts(mock.Anything, userID, &usecase.TopProductsInput{
			ReportRangeInput: usecase.ReportRangeInput{From: now.AddDate(0, -6, 0), To: now},
			Limit:            5,
		}).
		Return([]entity.ProductSales{}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/reports/top-products?limit=5", "", entity.UserPrincipal(userID))
	require.NoError(t, h.TopProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, _ = newTestContext(http.MethodGet, "/api/v1/reports/top-products?limit=five", "", entity.UserPrincipal(userID))
	assert.ErrorIs(t, h.TopProducts(c), domainerrors.ErrValidationFailed)
}
