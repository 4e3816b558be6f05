package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRow is one per-order summary produced by the sales report join.
type ReportRow struct {
	OrderID      uint            `json:"order_id"`
	OrderDate    time.Time       `json:"order_date"`
	UserID       uint            `json:"user_id"`
	UserName     string          `json:"user_name"`
	CustomerName string          `json:"customer_name"`
	TotalItems   int64           `json:"total_items"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
