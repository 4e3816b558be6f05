package events

import (
	"time"

	"cashier_app/internal/models"

	"github.com/shopspring/decimal"
)

// OrderCreatedEvent is published after an order transaction commits.
type OrderCreatedEvent struct {
	EventID    string             `json:"event_id"`
	OrderID    uint               `json:"order_id"`
	UserID     uint               `json:"user_id"`
	CustomerID uint               `json:"customer_id"`
	TotalPrice decimal.Decimal    `json:"total_price"`
	Items      []models.OrderItem `json:"items"`
	Timestamp  time.Time          `json:"timestamp"`
}

// OrderDeletedEvent is published after an order and its items are removed.
type OrderDeletedEvent struct {
	EventID   string    `json:"event_id"`
	OrderID   uint      `json:"order_id"`
	Timestamp time.Time `json:"timestamp"`
}
