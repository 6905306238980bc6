package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cashmemo/config"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/domain/service"
	"cashmemo/internal/infra/cache"
	mockRepo "cashmemo/internal/mocks/repository"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAdService(t *testing.T) (usecase.AdUsecase, *mockRepo.MockAdRepository) {
	t.Helper()

	srv, adRepo, _ := newTestAdServiceWithCache(t)

	return srv, adRepo
}

func newTestAdServiceWithCache(t *testing.T) (usecase.AdUsecase, *mockRepo.MockAdRepository, service.ReferenceCache) {
	t.Helper()

	adRepo := mockRepo.NewMockAdRepository(t)
	refCache := cache.NewMemoryCache(64, time.Minute)
	srv := NewAdService(AdServiceParams{
		AdRepo: adRepo,
		Cache:  refCache,
		Config: &config.Config{Ads: &config.AdsConfig{Slots: []string{"home_banner", "Sidebar", "home"}}},
		Logger: newDiscardLogger(),
	})

	return srv, adRepo, refCache
}

func TestAdService_ListActive_CachesPerSlot(t *testing.T) {
	srv, adRepo := newTestAdService(t)
	banner := &entity.AdPlacement{ID: uuid.New(), Slot: "home_banner", ImageURL: "https://cdn.test/a.png", IsActive: true}

	adRepo.EXPECT().ListActiveAds(mock.Anything, "home_banner").Return([]*entity.AdPlacement{banner}, nil).Once()
	adRepo.EXPECT().ListActiveAds(mock.Anything, "").Return(nil, nil).Once()

	for i := 0; i < 3; i++ {
		ads, err := srv.ListActive(context.Background(), " Home_Banner ")
		require.NoError(t, err)
		require.Len(t, ads, 1)
		assert.Equal(t, banner.ID, ads[0].ID)
	}

	all, err := srv.ListActive(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestAdService_CreateAd_InvalidatesSlot(t *testing.T) {
	srv, adRepo := newTestAdService(t)

	adRepo.EXPECT().ListActiveAds(mock.Anything, "sidebar").Return(nil, nil).Twice()
	adRepo.EXPECT().CreateAd(mock.Anything, mock.MatchedBy(func(ad *entity.AdPlacement) bool {
		return ad.Slot == "sidebar" && ad.IsActive
	})).Return(nil).Once()

	_, err := srv.ListActive(context.Background(), "sidebar")
	require.NoError(t, err)

	_, err = srv.CreateAd(context.Background(), &usecase.CreateAdInput{
		Slot:     "Sidebar",
		ImageURL: "https://cdn.test/sidebar.webp",
		IsActive: true,
	})
	require.NoError(t, err)

	// The create dropped the cached slot, so this read goes back to the repository.
	_, err = srv.ListActive(context.Background(), "sidebar")
	require.NoError(t, err)
}

func TestAdService_CreateAd_Validation(t *testing.T) {
	srv, _ := newTestAdService(t)

	_, err := srv.CreateAd(context.Background(), &usecase.CreateAdInput{Slot: "home"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = srv.CreateAd(context.Background(), &usecase.CreateAdInput{Slot: "home", ImageURL: "not a url"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdService_UnknownSlotIsRejectedBeforeCaching(t *testing.T) {
	srv, adRepo, refCache := newTestAdServiceWithCache(t)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		_, err := srv.ListActive(ctx, fmt.Sprintf("junk-%d", i))
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}

	var cached []*entity.AdPlacement
	found, err := refCache.Get(ctx, "ads:junk-0", &cached)
	require.NoError(t, err)
	assert.False(t, found)
	adRepo.AssertNotCalled(t, "ListActiveAds", mock.Anything, mock.Anything)

	_, err = srv.CreateAd(ctx, &usecase.CreateAdInput{Slot: "popup", ImageURL: "https://cdn.test/p.png"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	adRepo.AssertNotCalled(t, "CreateAd", mock.Anything, mock.Anything)
}

func TestAdService_DefaultSlots(t *testing.T) {
	adRepo := mockRepo.NewMockAdRepository(t)
	srv := NewAdService(AdServiceParams{
		AdRepo: adRepo,
		Cache:  cache.NewMemoryCache(64, time.Minute),
		Logger: newDiscardLogger(),
	})

	adRepo.EXPECT().ListActiveAds(mock.Anything, "storefront").Return(nil, nil).Once()
	_, err := srv.ListActive(context.Background(), "storefront")
	require.NoError(t, err)

	_, err = srv.ListActive(context.Background(), "home_banner")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdService_DeleteAd(t *testing.T) {
	srv, adRepo := newTestAdService(t)
	adID := uuid.New()

	adRepo.EXPECT().FindAdByID(mock.Anything, adID).Return(&entity.AdPlacement{ID: adID, Slot: "home"}, nil).Once()
	adRepo.EXPECT().DeleteAd(mock.Anything, adID).Return(nil).Once()
	require.NoError(t, srv.DeleteAd(context.Background(), adID))

	missing := uuid.New()
	adRepo.EXPECT().FindAdByID(mock.Anything, missing).Return(nil, repository.ErrAdNotFound).Once()
	err := srv.DeleteAd(context.Background(), missing)
	assert.True(t, errors.Is(err, domainerrors.ErrAdNotFound))
}
