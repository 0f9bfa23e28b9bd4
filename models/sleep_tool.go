package models

import "gorm.io/gorm"

// SleepTool is a standalone guided content item (wind-down audio,
// soundscape, ...), optionally premium-gated.
type SleepTool struct {
	gorm.Model
	Title           string `gorm:"not null"`
	Description     string `gorm:"type:text"`
	Category        string `gorm:"size:32"` // "soundscape" | "story" | "breathing" | ...
	DurationMinutes int
	AudioURL        string
	IsPremium       bool
}
