package models

import "gorm.io/gorm"

// UserPreference is a key/value pair; the client treats these as the
// source of truth for theme and display settings.
type UserPreference struct {
	gorm.Model
	UserID uint   `gorm:"index;not null;uniqueIndex:idx_user_pref_key"`
	Key    string `gorm:"size:64;not null;uniqueIndex:idx_user_pref_key"`
	Value  string
}
