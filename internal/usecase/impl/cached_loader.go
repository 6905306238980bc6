package impl

import (
	"context"
	"log/slog"
	"time"

	"cashmemo/internal/domain/service"

	"golang.org/x/sync/singleflight"
)

// cachedLoader reads reference data cache-first. Concurrent misses on the same
// key share one database load. A failing cache is logged and bypassed.
type cachedLoader struct {
	cache  service.ReferenceCache
	ttl    time.Duration
	group  singleflight.Group
	logger *slog.Logger
}

func newCachedLoader(cache service.ReferenceCache, ttl time.Duration, logger *slog.Logger) *cachedLoader {
	return &cachedLoader{cache: cache, ttl: ttl, logger: logger}
}

func loadCached[T any](ctx context.Context, l *cachedLoader, key string, load func(context.Context) (T, error)) (T, error) {
	var cached T
	hit, err := l.cache.Get(ctx, key, &cached)
	if err != nil {
		l.logger.Warn("Reference cache read failed", slog.String("key", key), slog.Any("error", err))
	}
	if hit {
		return cached, nil
	}

	value, err, _ := l.group.Do(key, func() (any, error) {
		fresh, loadErr := load(ctx)
		if loadErr != nil {
			return nil, loadErr
		}

		if setErr := l.cache.Set(ctx, key, fresh, l.ttl); setErr != nil {
			l.logger.Warn("Reference cache write failed", slog.String("key", key), slog.Any("error", setErr))
		}

		return fresh, nil
	})
	if err != nil {
		var zero T

		return zero, err
	}

	return value.(T), nil
}

func (l *cachedLoader) invalidate(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := l.cache.Delete(ctx, key); err != nil {
			l.logger.Warn("Reference cache invalidation failed", slog.String("key", key), slog.Any("error", err))
		}
	}
}
