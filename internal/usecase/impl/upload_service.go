package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"cashmemo/config"
	deliverycontext "cashmemo/internal/delivery/context"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/domain/service"
	"cashmemo/internal/usecase"
	"cashmemo/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const fallbackMaxUploadBytes = 5 << 20

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

type uploadService struct {
	repos    repository.RepositoryFactory
	quota    usecase.QuotaEngine
	media    service.MediaStore
	maxBytes int64
	logger   *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Repos  repository.RepositoryFactory
	Quota  usecase.QuotaEngine
	Media  service.MediaStore
	Config *config.Config
	Logger *slog.Logger
}

// NewUploadService creates a new upload relay service instance
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	maxBytes := int64(fallbackMaxUploadBytes)
	if params.Config != nil && params.Config.Media != nil && params.Config.Media.MaxUploadBytes > 0 {
		maxBytes = params.Config.Media.MaxUploadBytes
	}

	return &uploadService{
		repos:    params.Repos,
		quota:    params.Quota,
		media:    params.Media,
		maxBytes: maxBytes,
		logger:   params.Logger,
	}
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage checks, in order, the plan permission, the size and the sniffed
// type, then relays the bytes. The declared content type is never trusted.
func (srv *uploadService) UploadImage(ctx context.Context, userID uuid.UUID, input *usecase.UploadImageInput) (*service.MediaAsset, error) {
	if err := srv.quota.CheckImageUpload(ctx, userID); err != nil {
		return nil, err
	}

	if len(input.Data) == 0 {
		return nil, domainerrors.NewValidationError("file is empty")
	}
	if int64(len(input.Data)) > srv.maxBytes {
		return nil, domainerrors.ErrFileTooLarge.WithDetails(fmt.Sprintf("maximum size is %s", util.FormatBytes(srv.maxBytes)))
	}

	detected := mimetype.Detect(input.Data)
	if !mimetype.EqualsAny(detected.String(), allowedImageTypes...) {
		return nil, domainerrors.ErrUnsupportedMedia.WithDetails(fmt.Sprintf("got %s, want jpeg, png, gif or webp", detected.String()))
	}

	name := path.Base(strings.ReplaceAll(input.FileName, `\`, "/"))
	if name == "." || name == "/" {
		name = "image"
	}
	name = strings.TrimSuffix(name, path.Ext(name)) + detected.Extension()

	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	asset, err := srv.media.Upload(ctx, shop.ID.String(), name, detected.String(), input.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to relay image")
	}

	srv.log(ctx).Info("Image uploaded",
		slog.String("userID", userID.String()),
		slog.String("publicID", asset.PublicID),
		slog.String("size", util.FormatBytes(asset.Size)),
	)

	return asset, nil
}

// DeleteImage removes an image from the caller's shop folder. Ids belonging to
// another shop, or to nobody, are NotFound.
func (srv *uploadService) DeleteImage(ctx context.Context, userID uuid.UUID, publicID string) error {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return domainerrors.NewValidationError("public_id is required")
	}

	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return err
	}

	if err := srv.media.Delete(ctx, shop.ID.String(), publicID); err != nil {
		if errors.Is(err, service.ErrMediaNotFound) {
			srv.log(ctx).Warn("Image delete outside shop folder refused",
				slog.String("profileID", shop.ID.String()),
				slog.String("publicID", publicID),
			)

			return domainerrors.ErrMediaNotFound
		}

		return errors.Wrap(err, "failed to delete image")
	}

	srv.log(ctx).Info("Image deleted",
		slog.String("userID", userID.String()),
		slog.String("publicID", publicID),
	)

	return nil
}
