package models

import "gorm.io/gorm"

type JournalEntry struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null"`
	Date    string `gorm:"size:10;index;not null"` // YYYY-MM-DD
	Title   string
	Content string `gorm:"type:text"`
	Mood    string `gorm:"size:32"`
}
