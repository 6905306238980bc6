package impl

import (
	"context"

	"cashmemo/internal/domain/constants"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// resolveShop loads the shop profile owned by userID. Every seller-scoped
// operation goes through it so another profile's rows are never reachable.
func resolveShop(ctx context.Context, repos repository.RepositoryFactory, userID uuid.UUID) (*entity.ShopProfile, error) {
	shop, err := repos.ShopRepo().FindShopByUserID(ctx, userID)
	if err != nil {
		return nil, mapRepoErr(err, repository.ErrShopNotFound, domainerrors.ErrShopNotFound, "failed to find shop by user")
	}

	return shop, nil
}

// mapRepoErr turns a repository sentinel into its domain error and wraps anything else.
func mapRepoErr(err, sentinel error, domainErr *domainerrors.BaseError, message string) error {
	if errors.Is(err, sentinel) {
		return domainErr
	}

	return errors.Wrap(err, message)
}

func normalizePage(page entity.Page) entity.Page {
	if page.Limit <= 0 {
		page.Limit = constants.DefaultPageSize
	}
	if page.Limit > constants.MaxPageSize {
		page.Limit = constants.MaxPageSize
	}
	if page.Offset < 0 {
		page.Offset = 0
	}

	return page
}

func newPagedResult[T any](items []T, total int64, page entity.Page) *entity.PagedResult[T] {
	if items == nil {
		items = []T{}
	}

	return &entity.PagedResult[T]{
		Items:  items,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
}
