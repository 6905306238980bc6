package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShopProfile is the tenant. Quotas and Pro status are tracked per profile.
type ShopProfile struct {
	ID          uuid.UUID      `json:"id"`
	UserID      uuid.UUID      `json:"user_id"`
	ShopName    string         `json:"shop_name"`
	ShopSlug    string         `json:"shop_slug"` // Public storefront path segment, globally unique.
	Description string         `json:"description"`
	LogoURL     string         `json:"logo_url"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address"`
	FacebookURL string         `json:"facebook_url"`
	CustomTheme map[string]any `json:"custom_theme,omitempty"`
	IsPro       bool           `json:"is_pro"`
	ProExpiry   *time.Time     `json:"pro_expiry,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ProActive reports whether the Pro grant is still in force at now.
func (s *ShopProfile) ProActive(now time.Time) bool {
	if s == nil || !s.IsPro || s.ProExpiry == nil {
		return false
	}

	return s.ProExpiry.After(now)
}
