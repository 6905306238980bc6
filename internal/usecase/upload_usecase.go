package usecase

import (
	"context"

	"cashmemo/internal/domain/service"

	"github.com/google/uuid"
)

// UploadImageInput is a raw image received from a seller.
type UploadImageInput struct {
	FileName    string
	ContentType string
	Data        []byte
}

// UploadUsecase relays seller images to the media store.
type UploadUsecase interface {
	// UploadImage checks the plan permission, size and type before relaying the bytes.
	UploadImage(ctx context.Context, userID uuid.UUID, input *UploadImageInput) (*service.MediaAsset, error)
	DeleteImage(ctx context.Context, userID uuid.UUID, publicID string) error
}
