package impl

import (
	"context"
	"testing"
	"time"

	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	mockRepo "cashmemo/internal/mocks/repository"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestReportService(m *repoMocks, reportRepo *mockRepo.MockReportRepository, now time.Time) *reportService {
	return &reportService{
		repos:      m.factory,
		reportRepo: reportRepo,
		loc:        dhaka,
		now:        func() time.Time { return now },
	}
}

func TestReportService_RevenueByMonth(t *testing.T) {
	m := newRepoMocks(t)
	reportRepo := mockRepo.NewMockReportRepository(t)
	userID := uuid.New()
	shop := m.ownShop(userID)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, dhaka)
	to := time.Date(2024, 4, 1, 0, 0, 0, 0, dhaka)

	reportRepo.EXPECT().RevenueByMonth(mock.Anything, shop.ID, from, to, dhaka).Return(nil, nil).Once()

	rows, err := newTestReportService(m, reportRepo, time.Now()).RevenueByMonth(context.Background(), userID, &usecase.ReportRangeInput{From: from, To: to})

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestReportService_RangeValidation(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, dhaka)

	tests := []struct {
		name  string
		input usecase.ReportRangeInput
	}{
		{name: "missing bounds", input: usecase.ReportRangeInput{From: base}},
		{name: "reversed", input: usecase.ReportRangeInput{From: base, To: base.AddDate(0, 0, -1)}},
		{name: "empty range", input: usecase.ReportRangeInput{From: base, To: base}},
		{name: "over two years", input: usecase.ReportRangeInput{From: base, To: base.AddDate(2, 0, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestReportService(newRepoMocks(t), mockRepo.NewMockReportRepository(t), time.Now())

			_, err := srv.RevenueByMonth(context.Background(), uuid.New(), &tt.input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
		})
	}
}

func TestReportService_TopSellingProducts_Limit(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, dhaka)
	to := from.AddDate(0, 1, 0)

	t.Run("defaults to ten", func(t *testing.T) {
		m := newRepoMocks(t)
		reportRepo := mockRepo.NewMockReportRepository(t)
		userID := uuid.New()
		shop := m.ownShop(userID)

		reportRepo.EXPECT().TopSellingProducts(mock.Anything, shop.ID, from, to, 10).
			Return([]entity.ProductSales{{Name: "Jamdani saree", Quantity: 12, Revenue: 5400}}, nil).
			Once()

		rows, err := newTestReportService(m, reportRepo, time.Now()).TopSellingProducts(context.Background(), userID, &usecase.TopProductsInput{
			ReportRangeInput: usecase.ReportRangeInput{From: from, To: to},
		})

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(12), rows[0].Quantity)
	})

	t.Run("rejects limit above fifty", func(t *testing.T) {
		srv := newTestReportService(newRepoMocks(t), mockRepo.NewMockReportRepository(t), time.Now())

		_, err := srv.TopSellingProducts(context.Background(), uuid.New(), &usecase.TopProductsInput{
			ReportRangeInput: usecase.ReportRangeInput{From: from, To: to},
			Limit:            51,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestReportService_DashboardSummary_UsesLocalMonth(t *testing.T) {
	m := newRepoMocks(t)
	reportRepo := mockRepo.NewMockReportRepository(t)
	userID := uuid.New()
	shop := m.ownShop(userID)
	// 20:00 UTC on 31 May is already 1 June in Dhaka.
	now := time.Date(2024, 5, 31, 20, 0, 0, 0, time.UTC)

	reportRepo.EXPECT().DashboardSummary(mock.Anything, shop.ID,
		mock.MatchedBy(func(start time.Time) bool { return start.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, dhaka)) }),
		mock.MatchedBy(func(end time.Time) bool { return end.Equal(time.Date(2024, 7, 1, 0, 0, 0, 0, dhaka)) }),
	).Return(&entity.DashboardSummary{OrdersThisMonth: 4}, nil).Once()

	summary, err := newTestReportService(m, reportRepo, now).DashboardSummary(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, int64(4), summary.OrdersThisMonth)
}
