package models

import "gorm.io/gorm"

// AdminContent is CMS copy (quotes, tips, announcements) managed from
// the admin panel.
type AdminContent struct {
	gorm.Model
	ContentType string `gorm:"size:32;not null"` // "quote" | "tip" | "announcement"
	Title       string
	Body        string `gorm:"type:text"`
	IsPublished bool
}
