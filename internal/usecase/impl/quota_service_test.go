package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cashmemo/config"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dhaka = time.FixedZone("BDT", 6*3600)

func newTestQuota(store *fakeStore, now time.Time) *quotaService {
	return &quotaService{
		repos:    store,
		fallback: fallbackPlan(config.DefaultFreePlanLimits()),
		loc:      dhaka,
		logger:   newDiscardLogger(),
		now:      func() time.Time { return now },
	}
}

func enforceInTx(ctx context.Context, tm *fakeTxManager, quota usecase.QuotaEngine, profileID uuid.UUID, resource entity.QuotaResource) error {
	return tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return quota.Enforce(ctx, repos, profileID, resource)
	})
}

func TestQuotaService_Enforce_DeniesAtLimit(t *testing.T) {
	store, tm := newFakeStore()
	store.addPlan(&entity.SubscriptionPlan{Name: "Free", Slug: "free", IsDefault: true, MaxCategories: 2, MaxProducts: 5, MaxOrdersPerMonth: 10})
	shop := store.addShop(&entity.ShopProfile{ShopName: "Rupa Crafts"})
	quota := newTestQuota(store, time.Now())

	store.categories[shop.ID] = 1
	require.NoError(t, enforceInTx(context.Background(), tm, quota, shop.ID, entity.QuotaCategory))

	store.categories[shop.ID] = 2
	err := enforceInTx(context.Background(), tm, quota, shop.ID, entity.QuotaCategory)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrQuotaExceeded))

	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "allows 2 categories")
}

func TestQuotaService_Enforce_Unlimited(t *testing.T) {
	store, tm := newFakeStore()
	store.addPlan(&entity.SubscriptionPlan{Slug: "free", IsDefault: true, MaxProducts: entity.Unlimited})
	shop := store.addShop(&entity.ShopProfile{})
	store.products[shop.ID] = 100000

	quota := newTestQuota(store, time.Now())

	assert.NoError(t, enforceInTx(context.Background(), tm, quota, shop.ID, entity.QuotaProduct))
}

func TestQuotaService_Enforce_ZeroLimitDeniesFirst(t *testing.T) {
	store, tm := newFakeStore()
	store.addPlan(&entity.SubscriptionPlan{Slug: "free", IsDefault: true, MaxProducts: 0})
	shop := store.addShop(&entity.ShopProfile{})

	err := enforceInTx(context.Background(), tm, newTestQuota(store, time.Now()), shop.ID, entity.QuotaProduct)

	assert.True(t, errors.Is(err, domainerrors.ErrQuotaExceeded))
}

func TestQuotaService_Enforce_OrderMonthUsesShopTimezone(t *testing.T) {
	store, tm := newFakeStore()
	store.addPlan(&entity.SubscriptionPlan{Slug: "free", IsDefault: true, MaxOrdersPerMonth: 1})
	shop := store.addShop(&entity.ShopProfile{})

	store.orders[shop.ID] = []time.Time{time.Date(2024, 2, 29, 23, 50, 0, 0, dhaka)}
	now := time.Date(2024, 3, 1, 0, 30, 0, 0, dhaka)
	quota := newTestQuota(store, now)

	require.NoError(t, enforceInTx(context.Background(), tm, quota, shop.ID, entity.QuotaOrder))

	store.orders[shop.ID] = append(store.orders[shop.ID], time.Date(2024, 3, 1, 0, 10, 0, 0, dhaka))
	err := enforceInTx(context.Background(), tm, quota, shop.ID, entity.QuotaOrder)
	assert.True(t, errors.Is(err, domainerrors.ErrQuotaExceeded))
}

func TestQuotaService_Enforce_OrderFromPreviousUTCDayCounts(t *testing.T) {
	store, tm := newFakeStore()
	store.addPlan(&entity.SubscriptionPlan{Slug: "free", IsDefault: true, MaxOrdersPerMonth: 1})
	shop := store.addShop(&entity.ShopProfile{})

	// 00:10 on 1 Mar in Dhaka is 18:10 on 29 Feb in UTC.
	store.orders[shop.ID] = []time.Time{time.Date(2024, 2, 29, 18, 10, 0, 0, time.UTC)}
	quota := newTestQuota(store, time.Date(2024, 3, 15, 12, 0, 0, 0, dhaka))

	err := enforceInTx(context.Background(), tm, quota, shop.ID, entity.QuotaOrder)
	assert.True(t, errors.Is(err, domainerrors.ErrQuotaExceeded))
}

func TestQuotaService_ResolvePlan(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, dhaka)
	past := now.Add(-time.Hour)
	future := now.AddDate(0, 0, 5)

	t.Run("active pro uses approved plan", func(t *testing.T) {
		store, _ := newFakeStore()
		store.addPlan(&entity.SubscriptionPlan{Slug: "free", IsDefault: true})
		pro := store.addPlan(&entity.SubscriptionPlan{Slug: "pro", MaxProducts: entity.Unlimited})
		shop := store.addShop(&entity.ShopProfile{IsPro: true, ProExpiry: &future})
		store.requests = append(store.requests, &entity.SubscriptionRequest{
			ProfileID: shop.ID,
			PlanID:    pro.ID,
			Status:    entity.SubscriptionRequestApproved,
		})

		plan, err := newTestQuota(store, now).ResolvePlan(context.Background(), store, shop, now)

		require.NoError(t, err)
		assert.Equal(t, "pro", plan.Slug)
	})

	t.Run("expired pro falls back to default", func(t *testing.T) {
		store, _ := newFakeStore()
		store.addPlan(&entity.SubscriptionPlan{Slug: "free", IsDefault: true})
		pro := store.addPlan(&entity.SubscriptionPlan{Slug: "pro"})
		shop := store.addShop(&entity.ShopProfile{IsPro: true, ProExpiry: &past})
		store.requests = append(store.requests, &entity.SubscriptionRequest{
			ProfileID: shop.ID,
			PlanID:    pro.ID,
			Status:    entity.SubscriptionRequestApproved,
		})

		plan, err := newTestQuota(store, now).ResolvePlan(context.Background(), store, shop, now)

		require.NoError(t, err)
		assert.Equal(t, "free", plan.Slug)
	})

	t.Run("pro without approved request uses default", func(t *testing.T) {
		store, _ := newFakeStore()
		store.addPlan(&entity.SubscriptionPlan{Slug: "free", IsDefault: true})
		shop := store.addShop(&entity.ShopProfile{IsPro: true, ProExpiry: &future})

		plan, err := newTestQuota(store, now).ResolvePlan(context.Background(), store, shop, now)

		require.NoError(t, err)
		assert.Equal(t, "free", plan.Slug)
	})

	t.Run("no default plan uses configured limits", func(t *testing.T) {
		store, _ := newFakeStore()
		shop := store.addShop(&entity.ShopProfile{})

		plan, err := newTestQuota(store, now).ResolvePlan(context.Background(), store, shop, now)

		require.NoError(t, err)
		limits := config.DefaultFreePlanLimits()
		assert.Equal(t, entity.Limit(limits.MaxCategories), plan.MaxCategories)
		assert.Equal(t, entity.Limit(limits.MaxProducts), plan.MaxProducts)
		assert.Equal(t, entity.Limit(limits.MaxOrdersPerMonth), plan.MaxOrdersPerMonth)
	})
}

func TestQuotaService_Enforce_UnknownShop(t *testing.T) {
	store, tm := newFakeStore()

	err := enforceInTx(context.Background(), tm, newTestQuota(store, time.Now()), uuid.New(), entity.QuotaCategory)

	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}

func TestQuotaService_CheckImageUpload(t *testing.T) {
	now := time.Now()
	future := now.AddDate(0, 1, 0)

	store, _ := newFakeStore()
	store.addPlan(&entity.SubscriptionPlan{Slug: "free", IsDefault: true, CanUploadImages: false})
	pro := store.addPlan(&entity.SubscriptionPlan{Slug: "pro", CanUploadImages: true})
	freeShop := store.addShop(&entity.ShopProfile{})
	proShop := store.addShop(&entity.ShopProfile{IsPro: true, ProExpiry: &future})
	store.requests = append(store.requests, &entity.SubscriptionRequest{
		ProfileID: proShop.ID,
		PlanID:    pro.ID,
		Status:    entity.SubscriptionRequestApproved,
	})
	quota := newTestQuota(store, now)

	err := quota.CheckImageUpload(context.Background(), freeShop.UserID)
	assert.True(t, errors.Is(err, domainerrors.ErrImageUploadNotAllowed))

	assert.NoError(t, quota.CheckImageUpload(context.Background(), proShop.UserID))

	err = quota.CheckImageUpload(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}

func TestQuotaService_GetUsage(t *testing.T) {
	now := time.Date(2024, 1, 20, 15, 0, 0, 0, dhaka)
	store, _ := newFakeStore()
	store.addPlan(&entity.SubscriptionPlan{Slug: "free", IsDefault: true, MaxCategories: 5})
	shop := store.addShop(&entity.ShopProfile{})
	store.categories[shop.ID] = 3
	store.products[shop.ID] = 7
	store.orders[shop.ID] = []time.Time{
		time.Date(2023, 12, 31, 23, 0, 0, 0, dhaka),
		time.Date(2024, 1, 2, 10, 0, 0, 0, dhaka),
		time.Date(2024, 1, 19, 10, 0, 0, 0, dhaka),
	}

	usage, err := newTestQuota(store, now).GetUsage(context.Background(), shop.UserID)

	require.NoError(t, err)
	assert.Equal(t, "free", usage.Plan.Slug)
	assert.False(t, usage.IsPro)
	assert.Equal(t, int64(3), usage.Categories)
	assert.Equal(t, int64(7), usage.Products)
	assert.Equal(t, int64(2), usage.OrdersThisMonth)
	assert.True(t, usage.PeriodStart.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, dhaka)))
	assert.True(t, usage.PeriodEnd.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, dhaka)))
}

func TestQuotaService_ConcurrentCreatesStopAtLimit(t *testing.T) {
	const (
		limit    = 3
		attempts = 12
	)

	store, tm := newFakeStore()
	store.addPlan(&entity.SubscriptionPlan{Slug: "free", IsDefault: true, MaxCategories: limit})
	shop := store.addShop(&entity.ShopProfile{})
	store.categories[shop.ID] = limit - 1

	categories := NewCategoryService(CategoryServiceParams{
		TxManager: tm,
		Repos:     store,
		Quota:     newTestQuota(store, time.Now()),
		Logger:    newDiscardLogger(),
	})

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		denied    atomic.Int32
	)
	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			<-start

			ctx := context.WithValue(context.Background(), workerContextKey, worker)
			_, err := categories.CreateCategory(ctx, shop.UserID, &usecase.CategoryInput{Name: "Sarees"})
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domainerrors.ErrQuotaExceeded):
				denied.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(attempts-1), denied.Load())
	assert.Equal(t, int64(limit), store.categories[shop.ID])
	assert.Equal(t, attempts, store.lockCalls)
}
