package media

import (
	"context"
	"log/slog"

	"cashmemo/config"
	"cashmemo/internal/domain/constants"
	"cashmemo/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the media store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMediaStore creates the MediaStore selected by configuration
func NewMediaStore(params Params) (service.MediaStore, error) {
	cfg := params.Config.Media
	logger := params.Logger

	switch cfg.Provider {
	case constants.MediaProviderHTTP:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for http media provider")
		}
		logger.Info("Using hosted media service", slog.String("endpoint", cfg.Endpoint))

		return NewHTTPMediaStore(cfg.Endpoint, cfg.APIKey, cfg.Folder, nil), nil

	case "", constants.MediaProviderBlob:
		if cfg.BucketURL == "" {
			return nil, errors.New("bucket url is required for blob media provider")
		}

		bucket, err := OpenBucket(params.Ctx, cfg.BucketURL)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return bucket.Close()
			},
		})
		logger.Info("Using blob media store", slog.String("bucket", cfg.BucketURL))

		return NewBlobMediaStore(bucket, cfg.Folder, cfg.PublicBaseURL, cfg.MaxImageDimension), nil

	default:
		return nil, errors.Errorf("unknown media provider: %s", cfg.Provider)
	}
}
