package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscription mirrors the billing provider's state for the admin panel.
// Payment processing itself happens outside this service.
type Subscription struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null"`
	Plan      string `gorm:"size:32"` // "free" | "premium"
	Status    string `gorm:"size:32"` // "active" | "canceled" | "past_due"
	ExpiresAt *time.Time
}
