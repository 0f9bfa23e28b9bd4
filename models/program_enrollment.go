package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// IntList stores a set of day numbers as a JSON array column, portable
// across postgres and sqlite.
type IntList []int

func (l IntList) Value() (driver.Value, error) {
	if l == nil {
		l = IntList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *IntList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = IntList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("IntList: unsupported column type")
}

func (l IntList) Contains(n int) bool {
	for _, v := range l {
		if v == n {
			return true
		}
	}
	return false
}

func (l IntList) Max() int {
	max := 0
	for _, v := range l {
		if v > max {
			max = v
		}
	}
	return max
}

// ProgramEnrollment tracks a user's position within a program.
// One row per (user, program); CurrentDay and IsCompleted are derived
// from CompletedDays by the enrollment service.
type ProgramEnrollment struct {
	gorm.Model
	UserID        uint `gorm:"index;not null"`
	ProgramID     uint `gorm:"index;not null"`
	Program       WellnessProgram
	EnrolledAt    time.Time
	CurrentDay    int     `gorm:"default:1"`
	CompletedDays IntList `gorm:"type:text"`
	IsCompleted   bool
	CompletedAt   *time.Time
}
