package model

import (
	"time"

	"github.com/google/uuid"
)

// AdPlacementModel mirrors the 'ad_placements' table.
type AdPlacementModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Slot      string    `gorm:"type:varchar(50);not null;index"`
	Title     string    `gorm:"type:varchar(200)"`
	ImageURL  string    `gorm:"type:varchar(500);not null"`
	LinkURL   string    `gorm:"type:varchar(500)"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdPlacementModel) TableName() string {
	return "ad_placements"
}
