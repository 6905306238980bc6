package repository

import (
	"context"
	"time"

	"cashmemo/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportRepository runs the aggregate queries behind seller reports.
type ReportRepository interface {
	// RevenueByMonth buckets non-cancelled orders in [from, to) by calendar month in loc, ascending.
	RevenueByMonth(ctx context.Context, profileID uuid.UUID, from, to time.Time, loc *time.Location) ([]entity.MonthlyRevenue, error)

	// TopSellingProducts ranks products by quantity sold in [from, to), descending.
	TopSellingProducts(ctx context.Context, profileID uuid.UUID, from, to time.Time, limit int) ([]entity.ProductSales, error)

	// DashboardSummary aggregates headline numbers with the month window [monthStart, monthEnd).
	DashboardSummary(ctx context.Context, profileID uuid.UUID, monthStart, monthEnd time.Time) (*entity.DashboardSummary, error)
}
