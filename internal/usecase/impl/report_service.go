package impl

import (
	"context"
	"time"

	"cashmemo/config"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxReportMonths     = 24
	defaultTopProducts  = 10
	maxTopProductsLimit = 50
)

type reportService struct {
	repos      repository.RepositoryFactory
	reportRepo repository.ReportRepository
	loc        *time.Location
	now        func() time.Time
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	Repos      repository.RepositoryFactory
	ReportRepo repository.ReportRepository
	Config     *config.Config
}

// NewReportService creates a new report service instance
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	var quotaCfg *config.QuotaConfig
	if params.Config != nil {
		quotaCfg = params.Config.Quota
	}

	return &reportService{
		repos:      params.Repos,
		reportRepo: params.ReportRepo,
		loc:        quotaCfg.Location(),
		now:        time.Now,
	}
}

func validateRange(input *usecase.ReportRangeInput) error {
	if input.From.IsZero() || input.To.IsZero() {
		return domainerrors.NewValidationError("from and to are required")
	}
	if !input.From.Before(input.To) {
		return domainerrors.NewValidationError("from must be before to")
	}
	if input.To.After(input.From.AddDate(0, maxReportMonths, 0)) {
		return domainerrors.NewValidationError("range cannot exceed 24 months")
	}

	return nil
}

// RevenueByMonth buckets revenue by calendar month in the shop timezone, oldest first.
func (srv *reportService) RevenueByMonth(ctx context.Context, userID uuid.UUID, input *usecase.ReportRangeInput) ([]entity.MonthlyRevenue, error) {
	if err := validateRange(input); err != nil {
		return nil, err
	}

	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	rows, err := srv.reportRepo.RevenueByMonth(ctx, shop.ID, input.From, input.To, srv.loc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load revenue by month")
	}

	return nonNil(rows), nil
}

func (srv *reportService) TopSellingProducts(ctx context.Context, userID uuid.UUID, input *usecase.TopProductsInput) ([]entity.ProductSales, error) {
	if err := validateRange(&input.ReportRangeInput); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultTopProducts
	}
	if limit < 1 || limit > maxTopProductsLimit {
		return nil, domainerrors.NewValidationError("limit must be between 1 and 50")
	}

	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	rows, err := srv.reportRepo.TopSellingProducts(ctx, shop.ID, input.From, input.To, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load top selling products")
	}

	return nonNil(rows), nil
}

func (srv *reportService) DashboardSummary(ctx context.Context, userID uuid.UUID) (*entity.DashboardSummary, error) {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	start, end := entity.MonthWindow(srv.now(), srv.loc)
	summary, err := srv.reportRepo.DashboardSummary(ctx, shop.ID, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dashboard summary")
	}

	return summary, nil
}
