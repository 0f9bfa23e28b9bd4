package models

import "gorm.io/gorm"

type MeditationSession struct {
	gorm.Model
	UserID          uint   `gorm:"index;not null"`
	Date            string `gorm:"size:10;index;not null"` // YYYY-MM-DD
	PracticeType    string `gorm:"size:32"`                // "breathwork" | "body_scan" | ...
	DurationMinutes int
	Notes           string
}
