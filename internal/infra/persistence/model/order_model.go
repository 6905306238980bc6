package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_orders_profile_created"`
	CustomerID      *uuid.UUID `gorm:"type:uuid"`
	OrderNumber     string     `gorm:"type:varchar(40);unique;not null"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending'"`
	Source          string     `gorm:"type:varchar(20);not null;default:'dashboard'"`
	Subtotal        float64    `gorm:"type:numeric(12,2);not null"`
	DeliveryCharge  float64    `gorm:"type:numeric(12,2);not null;default:0"`
	Discount        float64    `gorm:"type:numeric(12,2);not null;default:0"`
	Total           float64    `gorm:"type:numeric(12,2);not null"`
	Note            string     `gorm:"type:text"`
	DeliveryName    string     `gorm:"type:varchar(120)"`
	DeliveryMobile  string     `gorm:"type:varchar(20)"`
	DeliveryAddress string     `gorm:"type:text"`
	CreatedAt       time.Time  `gorm:"index:idx_orders_profile_created"`
	UpdatedAt       time.Time

	Items    []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Customer *CustomerModel   `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID   *uuid.UUID `gorm:"type:uuid;index"`
	ProductName string     `gorm:"type:varchar(200);not null"`
	UnitPrice   float64    `gorm:"type:numeric(12,2);not null"`
	Quantity    int        `gorm:"not null"`
	LineTotal   float64    `gorm:"type:numeric(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
