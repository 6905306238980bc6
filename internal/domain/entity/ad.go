package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdPlacement is a banner shown in a named slot of the public site.
type AdPlacement struct {
	ID        uuid.UUID `json:"id"`
	Slot      string    `json:"slot"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	LinkURL   string    `json:"link_url"`
	IsActive  bool      `json:"is_active"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
