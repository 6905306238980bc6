package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"cashmemo/config"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/domain/service"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const allSlotsKey = "ads:all"

type adService struct {
	adRepo repository.AdRepository
	cache  *cachedLoader
	slots  map[string]struct{}
	logger *slog.Logger
}

// AdServiceParams holds dependencies for AdService, injected by Fx.
type AdServiceParams struct {
	fx.In

	AdRepo repository.AdRepository
	Cache  service.ReferenceCache
	Config *config.Config
	Logger *slog.Logger
}

// NewAdService creates a new ad placement service instance
func NewAdService(params AdServiceParams) usecase.AdUsecase {
	return &adService{
		adRepo: params.AdRepo,
		cache:  newCachedLoader(params.Cache, cacheTTL(params.Config), params.Logger),
		slots:  adSlots(params.Config),
		logger: params.Logger,
	}
}

func adSlots(cfg *config.Config) map[string]struct{} {
	names := config.DefaultAdSlots()
	if cfg != nil && cfg.Ads != nil && len(cfg.Ads.Slots) > 0 {
		names = cfg.Ads.Slots
	}

	slots := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name = normalizeSlot(name); name != "" {
			slots[name] = struct{}{}
		}
	}

	return slots
}

// checkSlot keeps cache keys to the configured slot list; empty means all slots.
func (srv *adService) checkSlot(slot string) error {
	if slot == "" {
		return nil
	}
	if _, ok := srv.slots[slot]; !ok {
		return domainerrors.NewValidationError("unknown ad slot: " + slot)
	}

	return nil
}

func adSlotKey(slot string) string {
	if slot == "" {
		return allSlotsKey
	}

	return "ads:" + slot
}

func normalizeSlot(slot string) string {
	return strings.ToLower(strings.TrimSpace(slot))
}

// ListActive serves a slot from the reference cache, loading from the database on a miss.
func (srv *adService) ListActive(ctx context.Context, slot string) ([]*entity.AdPlacement, error) {
	slot = normalizeSlot(slot)
	if err := srv.checkSlot(slot); err != nil {
		return nil, err
	}

	ads, err := loadCached(ctx, srv.cache, adSlotKey(slot), func(ctx context.Context) ([]*entity.AdPlacement, error) {
		ads, err := srv.adRepo.ListActiveAds(ctx, slot)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list active ads")
		}

		return nonNil(ads), nil
	})
	if err != nil {
		return nil, err
	}

	return nonNil(ads), nil
}

func (srv *adService) ListAll(ctx context.Context) ([]*entity.AdPlacement, error) {
	ads, err := srv.adRepo.ListAds(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ads")
	}

	return nonNil(ads), nil
}

func (srv *adService) CreateAd(ctx context.Context, input *usecase.CreateAdInput) (*entity.AdPlacement, error) {
	slot := normalizeSlot(input.Slot)
	imageURL := strings.TrimSpace(input.ImageURL)
	if slot == "" || imageURL == "" {
		return nil, domainerrors.NewValidationError("slot and image_url are required")
	}
	if err := srv.checkSlot(slot); err != nil {
		return nil, err
	}
	if _, err := url.ParseRequestURI(imageURL); err != nil {
		return nil, domainerrors.NewValidationError("image_url must be an absolute URL")
	}

	ad := &entity.AdPlacement{
		Slot:      slot,
		Title:     strings.TrimSpace(input.Title),
		ImageURL:  imageURL,
		LinkURL:   strings.TrimSpace(input.LinkURL),
		IsActive:  input.IsActive,
		SortOrder: input.SortOrder,
	}
	if err := srv.adRepo.CreateAd(ctx, ad); err != nil {
		return nil, errors.Wrap(err, "failed to create ad")
	}

	srv.cache.invalidate(ctx, adSlotKey(slot), allSlotsKey)

	return ad, nil
}

func (srv *adService) DeleteAd(ctx context.Context, adID uuid.UUID) error {
	ad, err := srv.adRepo.FindAdByID(ctx, adID)
	if err != nil {
		return mapRepoErr(err, repository.ErrAdNotFound, domainerrors.ErrAdNotFound, "failed to find ad")
	}

	if err := srv.adRepo.DeleteAd(ctx, adID); err != nil {
		return mapRepoErr(err, repository.ErrAdNotFound, domainerrors.ErrAdNotFound, "failed to delete ad")
	}

	srv.cache.invalidate(ctx, adSlotKey(ad.Slot), allSlotsKey)

	return nil
}
