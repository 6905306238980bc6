package cache

import (
	"context"
	"log/slog"

	"cashmemo/config"
	"cashmemo/internal/domain/constants"
	"cashmemo/internal/domain/lifecycle"
	"cashmemo/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the reference cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewReferenceCache creates the cache selected by configuration
func NewReferenceCache(params Params) (service.ReferenceCache, error) {
	cfg := params.Config.Cache
	logger := params.Logger

	switch cfg.Provider {
	case "", constants.CacheProviderMemory:
		logger.Info("Using in-memory reference cache",
			slog.Duration("ttl", cfg.TTL),
			slog.Int("max_entries", cfg.MaxEntries))

		return NewMemoryCache(cfg.MaxEntries, cfg.TTL), nil

	case constants.CacheProviderRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis cache provider")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping redis")
				}
				logger.Info("Redis reference cache connected", slog.String("addr", cfg.Redis.Addr))

				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		return NewRedisCache(client, cfg.Redis.Prefix, cfg.TTL), nil

	default:
		return nil, errors.Errorf("unknown cache provider: %s", cfg.Provider)
	}
}
