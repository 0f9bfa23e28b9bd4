package models

import "gorm.io/gorm"

// VisualRhythm is a movement image shown on the dashboard carousels.
type VisualRhythm struct {
	gorm.Model
	Title     string
	Category  string `gorm:"size:32"`
	ImageURL  string `gorm:"not null"`
	SortOrder int
}
