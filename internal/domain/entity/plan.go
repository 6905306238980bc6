package entity

import (
	"time"

	"github.com/google/uuid"
)

// Unlimited marks a plan limit without a ceiling.
const Unlimited Limit = -1

// Limit is a per-plan ceiling on a resource.
type Limit int

// IsUnlimited reports whether the limit has no ceiling.
func (l Limit) IsUnlimited() bool {
	return l < 0
}

// Allows reports whether one more resource may be created on top of usage.
func (l Limit) Allows(usage int64) bool {
	if l.IsUnlimited() {
		return true
	}

	return usage < int64(l)
}

// QuotaResource names a resource gated by plan limits.
type QuotaResource string

const (
	QuotaCategory QuotaResource = "category"
	QuotaProduct  QuotaResource = "product"
	QuotaOrder    QuotaResource = "order"
)

// SubscriptionPlan is a tier in the plan catalogue.
type SubscriptionPlan struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	Description       string    `json:"description"`
	Price             float64   `json:"price"`
	DurationDays      int       `json:"duration_days"`
	MaxCategories     Limit     `json:"max_categories"`
	MaxProducts       Limit     `json:"max_products"`
	MaxOrdersPerMonth Limit     `json:"max_orders_per_month"`
	CanUploadImages   bool      `json:"can_upload_images"`
	IsDefault         bool      `json:"is_default"`
	IsActive          bool      `json:"is_active"`
	SortOrder         int       `json:"sort_order"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// LimitFor returns the ceiling that applies to resource.
func (p *SubscriptionPlan) LimitFor(resource QuotaResource) Limit {
	switch resource {
	case QuotaCategory:
		return p.MaxCategories
	case QuotaProduct:
		return p.MaxProducts
	case QuotaOrder:
		return p.MaxOrdersPerMonth
	default:
		return 0
	}
}

// PlanUsage is the dashboard view of the effective plan and its consumption.
type PlanUsage struct {
	Plan            *SubscriptionPlan `json:"plan"`
	IsPro           bool              `json:"is_pro"`
	ProExpiry       *time.Time        `json:"pro_expiry,omitempty"`
	Categories      int64             `json:"categories"`
	Products        int64             `json:"products"`
	OrdersThisMonth int64             `json:"orders_this_month"`
	PeriodStart     time.Time         `json:"period_start"`
	PeriodEnd       time.Time         `json:"period_end"`
}
