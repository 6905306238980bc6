package postgres

import (
	"context"
	"time"

	"cashmemo/internal/domain/entity"
	"cashmemo/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const revenueByMonthSQL = `
SELECT date_trunc('month', o.created_at AT TIME ZONE @tz) AS month,
       COUNT(*) AS order_count,
       COALESCE(SUM(o.total), 0) AS revenue
FROM orders o
WHERE o.profile_id = @profile
  AND o.status <> @cancelled
  AND o.created_at >= @from AND o.created_at < @to
GROUP BY 1
ORDER BY 1 ASC`

const topSellingProductsSQL = `
SELECT oi.product_id AS product_id,
       MAX(oi.product_name) AS name,
       SUM(oi.quantity) AS quantity,
       COALESCE(SUM(oi.line_total), 0) AS revenue
FROM order_items oi
JOIN orders o ON o.id = oi.order_id
WHERE o.profile_id = @profile
  AND o.status <> @cancelled
  AND o.created_at >= @from AND o.created_at < @to
  AND oi.product_id IS NOT NULL
GROUP BY oi.product_id
ORDER BY quantity DESC, revenue DESC
LIMIT @limit`

const dashboardSummarySQL = `
SELECT
  (SELECT COUNT(*) FROM products WHERE profile_id = @profile) AS products,
  (SELECT COUNT(*) FROM customers WHERE profile_id = @profile) AS customers,
  (SELECT COUNT(*) FROM orders WHERE profile_id = @profile
     AND created_at >= @from AND created_at < @to) AS orders_this_month,
  (SELECT COALESCE(SUM(total), 0) FROM orders WHERE profile_id = @profile
     AND status <> @cancelled AND created_at >= @from AND created_at < @to) AS revenue_this_month,
  (SELECT COALESCE(SUM(total - paid_amount), 0) FROM invoices WHERE profile_id = @profile
     AND status <> @paid) AS unpaid_invoices`

// reportRepository implements the repository.ReportRepository interface with raw aggregate SQL.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

type monthlyRevenueRow struct {
	Month      time.Time
	OrderCount int64
	Revenue    float64
}

// RevenueByMonth returns one row per month that has orders, ascending.
func (repo *reportRepository) RevenueByMonth(ctx context.Context, profileID uuid.UUID, from, to time.Time, loc *time.Location) ([]entity.MonthlyRevenue, error) {
	if loc == nil {
		loc = time.UTC
	}

	var rows []monthlyRevenueRow
	if err := repo.db.WithContext(ctx).Raw(revenueByMonthSQL, map[string]any{
		"tz":        loc.String(),
		"profile":   profileID,
		"cancelled": string(entity.OrderCancelled),
		"from":      from,
		"to":        to,
	}).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query revenue by month")
	}

	result := make([]entity.MonthlyRevenue, 0, len(rows))
	for _, row := range rows {
		// date_trunc on a zone-shifted timestamp yields wall-clock fields in loc.
		result = append(result, entity.MonthlyRevenue{
			Month:      time.Date(row.Month.Year(), row.Month.Month(), 1, 0, 0, 0, 0, loc),
			OrderCount: row.OrderCount,
			Revenue:    row.Revenue,
		})
	}

	return result, nil
}

// TopSellingProducts ranks products by quantity sold.
func (repo *reportRepository) TopSellingProducts(ctx context.Context, profileID uuid.UUID, from, to time.Time, limit int) ([]entity.ProductSales, error) {
	var rows []entity.ProductSales
	if err := repo.db.WithContext(ctx).Raw(topSellingProductsSQL, map[string]any{
		"profile":   profileID,
		"cancelled": string(entity.OrderCancelled),
		"from":      from,
		"to":        to,
		"limit":     limit,
	}).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query top selling products")
	}

	return rows, nil
}

// DashboardSummary aggregates the headline numbers in one round trip.
func (repo *reportRepository) DashboardSummary(ctx context.Context, profileID uuid.UUID, monthStart, monthEnd time.Time) (*entity.DashboardSummary, error) {
	var summary entity.DashboardSummary
	if err := repo.db.WithContext(ctx).Raw(dashboardSummarySQL, map[string]any{
		"profile":   profileID,
		"cancelled": string(entity.OrderCancelled),
		"paid":      string(entity.InvoicePaid),
		"from":      monthStart,
		"to":        monthEnd,
	}).Scan(&summary).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query dashboard summary")
	}

	return &summary, nil
}
