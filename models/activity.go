package models

import "gorm.io/gorm"

// Activity is a single daily scalar (steps, sleep hours, water glasses,
// mood check). Duplicate rows for the same (user, date, type) are allowed;
// readers treat the last inserted row as authoritative.
type Activity struct {
	gorm.Model
	UserID       uint   `gorm:"index;not null"`
	Date         string `gorm:"size:10;index;not null"` // YYYY-MM-DD
	ActivityType string `gorm:"size:32;not null"`       // steps | sleep | water | mood_check
	Value        int
}
