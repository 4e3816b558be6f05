package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the checkout header. TotalPrice is derived from catalog prices at
// creation time and never recomputed afterwards.
type Order struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"user_id" gorm:"not null"`
	CustomerID uint            `json:"customer_id" gorm:"not null"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
	OrderDate  time.Time       `json:"order_date" gorm:"not null"`
	Items      []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
