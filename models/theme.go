package models

import "gorm.io/gorm"

// Theme is a named color palette, optionally bound to a time of day for
// automatic selection.
type Theme struct {
	gorm.Model
	Name       string `gorm:"uniqueIndex;not null"`
	TimeOfDay  string `gorm:"size:16"` // morning | afternoon | evening | night | ""
	Primary    string `gorm:"size:16"` // hex colors
	Accent     string `gorm:"size:16"`
	Background string `gorm:"size:16"`
}
