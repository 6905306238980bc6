package entity

import (
	"time"

	"github.com/google/uuid"
)

// MonthlyRevenue is one row of the revenue-by-month report.
type MonthlyRevenue struct {
	Month      time.Time `json:"month"`
	OrderCount int64     `json:"order_count"`
	Revenue    float64   `json:"revenue"`
}

// ProductSales is one row of the top-selling products report.
type ProductSales struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int64     `json:"quantity"`
	Revenue   float64   `json:"revenue"`
}

// DashboardSummary aggregates the seller's headline numbers.
type DashboardSummary struct {
	Products         int64   `json:"products"`
	Customers        int64   `json:"customers"`
	OrdersThisMonth  int64   `json:"orders_this_month"`
	RevenueThisMonth float64 `json:"revenue_this_month"`
	UnpaidInvoices   float64 `json:"unpaid_invoices"`
}
