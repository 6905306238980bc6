package service

import (
	"context"

	"cashmemo/internal/errors"
)

// ErrMediaNotFound is returned when a public id is outside the owner's namespace.
var ErrMediaNotFound = errors.New("media object not found")

// MediaAsset describes an image stored by the media relay.
type MediaAsset struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
	Size     int64  `json:"size"`
}

// MediaStore relays image bytes to storage and removes them by public id.
// Objects are namespaced by owner; Delete refuses ids from another namespace
// with ErrMediaNotFound.
type MediaStore interface {
	Upload(ctx context.Context, owner, name, contentType string, data []byte) (*MediaAsset, error)
	Delete(ctx context.Context, owner, publicID string) error
}
