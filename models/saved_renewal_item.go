package models

import "gorm.io/gorm"

// SavedRenewalItem is a bookmarked program, ritual or tool. Unique per
// (user, item); pausing is independent of deletion.
type SavedRenewalItem struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	ItemType string `gorm:"size:16;not null"` // program | ritual | tool
	ItemID   uint   `gorm:"not null"`
	IsPaused bool
}
