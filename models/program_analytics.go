package models

import "gorm.io/gorm"

// ProgramAnalytics is one raw adoption sample per (program, date).
// Trending reads these back over a 14-day window.
type ProgramAnalytics struct {
	gorm.Model
	ProgramID   uint   `gorm:"index;not null"`
	Date        string `gorm:"size:10;index;not null"` // YYYY-MM-DD
	ActiveUsers int
}
