package models

import (
	"time"
)

// Customer is created lazily on first checkout under a given name.
// Name carries no uniqueness constraint; resolution is "first match wins".
type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
