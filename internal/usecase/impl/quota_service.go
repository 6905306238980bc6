package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cashmemo/config"
	deliverycontext "cashmemo/internal/delivery/context"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// quotaService implements the QuotaEngine interface.
type quotaService struct {
	repos    repository.RepositoryFactory
	fallback entity.SubscriptionPlan
	loc      *time.Location
	logger   *slog.Logger
	now      func() time.Time
}

// QuotaServiceParams holds dependencies for QuotaService, injected by Fx.
type QuotaServiceParams struct {
	fx.In

	Repos  repository.RepositoryFactory
	Config *config.Config
	Logger *slog.Logger
}

// NewQuotaService is the constructor for quotaService.
func NewQuotaService(params QuotaServiceParams) usecase.QuotaEngine {
	limits := config.DefaultFreePlanLimits()
	var quotaCfg *config.QuotaConfig
	if params.Config != nil && params.Config.Quota != nil {
		quotaCfg = params.Config.Quota
		limits = quotaCfg.FreePlan
	}

	return &quotaService{
		repos:    params.Repos,
		fallback: fallbackPlan(limits),
		loc:      quotaCfg.Location(),
		logger:   params.Logger,
		now:      time.Now,
	}
}

// fallbackPlan is used when the catalogue has no default plan.
func fallbackPlan(limits config.FreePlanLimits) entity.SubscriptionPlan {
	return entity.SubscriptionPlan{
		Name:              "Free",
		Slug:              "free",
		MaxCategories:     entity.Limit(limits.MaxCategories),
		MaxProducts:       entity.Limit(limits.MaxProducts),
		MaxOrdersPerMonth: entity.Limit(limits.MaxOrdersPerMonth),
		CanUploadImages:   limits.CanUploadImages,
		IsDefault:         true,
		IsActive:          true,
	}
}

func (srv *quotaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Enforce locks the shop row so concurrent creations for one profile are
// serialised until the caller's transaction ends.
func (srv *quotaService) Enforce(ctx context.Context, repos repository.RepositoryFactory, profileID uuid.UUID, resource entity.QuotaResource) error {
	shop, err := repos.ShopRepo().LockShopByID(ctx, profileID)
	if err != nil {
		return mapRepoErr(err, repository.ErrShopNotFound, domainerrors.ErrShopNotFound, "failed to lock shop profile")
	}

	now := srv.now()
	plan, err := srv.ResolvePlan(ctx, repos, shop, now)
	if err != nil {
		return err
	}

	limit := plan.LimitFor(resource)
	if limit.IsUnlimited() {
		return nil
	}

	usage, err := srv.countUsage(ctx, repos, profileID, resource, now)
	if err != nil {
		return err
	}

	if limit.Allows(usage) {
		return nil
	}

	srv.log(ctx).Info("Quota exceeded",
		slog.String("profileID", profileID.String()),
		slog.String("resource", string(resource)),
		slog.String("plan", plan.Slug),
		slog.Int64("usage", usage),
		slog.Int("limit", int(limit)),
	)

	return domainerrors.ErrQuotaExceeded.WithDetails(quotaDetails(resource, limit, plan.Name))
}

func quotaDetails(resource entity.QuotaResource, limit entity.Limit, planName string) string {
	if resource == entity.QuotaOrder {
		return fmt.Sprintf("the %s plan allows %d orders per month", planName, limit)
	}

	return fmt.Sprintf("the %s plan allows %d %s", planName, limit, pluralResource(resource))
}

func pluralResource(resource entity.QuotaResource) string {
	if resource == entity.QuotaCategory {
		return "categories"
	}

	return string(resource) + "s"
}

// ResolvePlan prefers the plan of the latest approved request while Pro is in
// force, then the catalogue default, then the configured free limits.
func (srv *quotaService) ResolvePlan(ctx context.Context, repos repository.RepositoryFactory, shop *entity.ShopProfile, now time.Time) (*entity.SubscriptionPlan, error) {
	if shop.ProActive(now) {
		request, err := repos.SubscriptionRequestRepo().FindLatestApprovedRequest(ctx, shop.ID)
		switch {
		case err == nil && request.Plan != nil:
			return request.Plan, nil
		case err == nil, errors.Is(err, repository.ErrSubscriptionRequestNotFound):
			srv.log(ctx).Warn("Pro shop has no approved plan, using default plan", slog.String("profileID", shop.ID.String()))
		default:
			return nil, errors.Wrap(err, "failed to find latest approved request")
		}
	}

	plan, err := repos.PlanRepo().FindDefaultPlan(ctx)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, repository.ErrPlanNotFound) {
		return nil, errors.Wrap(err, "failed to find default plan")
	}

	fallback := srv.fallback

	return &fallback, nil
}

func (srv *quotaService) countUsage(ctx context.Context, repos repository.RepositoryFactory, profileID uuid.UUID, resource entity.QuotaResource, now time.Time) (int64, error) {
	var (
		count int64
		err   error
	)

	switch resource {
	case entity.QuotaCategory:
		count, err = repos.CategoryRepo().CountCategories(ctx, profileID)
	case entity.QuotaProduct:
		count, err = repos.ProductRepo().CountProducts(ctx, profileID)
	case entity.QuotaOrder:
		from, to := entity.MonthWindow(now, srv.loc)
		count, err = repos.OrderRepo().CountOrdersBetween(ctx, profileID, from, to)
	default:
		return 0, errors.Errorf("unknown quota resource %q", resource)
	}

	if err != nil {
		return 0, errors.Wrapf(err, "failed to count %s usage", resource)
	}

	return count, nil
}

// CheckImageUpload is a read-only permission check; it does not lock the shop.
func (srv *quotaService) CheckImageUpload(ctx context.Context, userID uuid.UUID) error {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return err
	}

	plan, err := srv.ResolvePlan(ctx, srv.repos, shop, srv.now())
	if err != nil {
		return err
	}

	if !plan.CanUploadImages {
		srv.log(ctx).Info("Image upload denied by plan",
			slog.String("profileID", shop.ID.String()),
			slog.String("plan", plan.Slug),
		)

		return domainerrors.ErrImageUploadNotAllowed
	}

	return nil
}

func (srv *quotaService) GetUsage(ctx context.Context, userID uuid.UUID) (*entity.PlanUsage, error) {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	plan, err := srv.ResolvePlan(ctx, srv.repos, shop, now)
	if err != nil {
		return nil, err
	}

	usage := &entity.PlanUsage{
		Plan:      plan,
		IsPro:     shop.ProActive(now),
		ProExpiry: shop.ProExpiry,
	}
	usage.PeriodStart, usage.PeriodEnd = entity.MonthWindow(now, srv.loc)

	if usage.Categories, err = srv.countUsage(ctx, srv.repos, shop.ID, entity.QuotaCategory, now); err != nil {
		return nil, err
	}
	if usage.Products, err = srv.countUsage(ctx, srv.repos, shop.ID, entity.QuotaProduct, now); err != nil {
		return nil, err
	}
	if usage.OrdersThisMonth, err = srv.countUsage(ctx, srv.repos, shop.ID, entity.QuotaOrder, now); err != nil {
		return nil, err
	}

	return usage, nil
}
