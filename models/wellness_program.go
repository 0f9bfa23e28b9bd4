package models

import "gorm.io/gorm"

// WellnessProgram is an admin-authored, fixed-length, day-indexed
// curriculum. Read-only to end users.
type WellnessProgram struct {
	gorm.Model
	ProgramType     string `gorm:"size:32"` // "mindfulness" | "movement" | "sleep" | ...
	Title           string `gorm:"not null"`
	Description     string `gorm:"type:text"`
	DurationDays    int    `gorm:"not null"` // >= 1
	IsPremium       bool
	DailyActivities []ProgramDailyActivity `gorm:"foreignKey:ProgramID"`
}

// One scheduled activity per program day, 1..DurationDays.
type ProgramDailyActivity struct {
	gorm.Model
	ProgramID uint `gorm:"index;not null"`
	Day       int  `gorm:"not null"`
	Title     string
	Activity  string `gorm:"type:text"`
}
