package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string
	Role     string `gorm:"size:16;default:user"` // "user" | "admin"
}

func (u *User) IsAdmin() bool { return u.Role == "admin" }
