package usecase

import (
	"context"
	"time"

	"cashmemo/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportRangeInput is a half-open reporting window [From, To).
type ReportRangeInput struct {
	From time.Time
	To   time.Time
}

// TopProductsInput adds a row limit to a reporting window.
type TopProductsInput struct {
	ReportRangeInput
	Limit int
}

// ReportUsecase produces seller reports with validated inputs and ordered rows.
type ReportUsecase interface {
	RevenueByMonth(ctx context.Context, userID uuid.UUID, input *ReportRangeInput) ([]entity.MonthlyRevenue, error)
	TopSellingProducts(ctx context.Context, userID uuid.UUID, input *TopProductsInput) ([]entity.ProductSales, error)
	DashboardSummary(ctx context.Context, userID uuid.UUID) (*entity.DashboardSummary, error)
}
