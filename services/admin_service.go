package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

// ---------- CMS content ----------

type AdminContentInput struct {
	ContentType string `json:"content_type" binding:"required"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	IsPublished bool   `json:"is_published"`
}

func ListAdminContent() ([]models.AdminContent, error) {
	var content []models.AdminContent
	err := config.DB.Order("id asc").Find(&content).Error
	return content, err
}

func CreateAdminContent(input AdminContentInput) (*models.AdminContent, error) {
	content := models.AdminContent{
		ContentType: input.ContentType,
		Title:       input.Title,
		Body:        input.Body,
		IsPublished: input.IsPublished,
	}
	if err := config.DB.Create(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func UpdateAdminContent(contentID uint, input AdminContentInput) (*models.AdminContent, error) {
	var content models.AdminContent
	if err := config.DB.First(&content, contentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	content.ContentType = input.ContentType
	content.Title = input.Title
	content.Body = input.Body
	content.IsPublished = input.IsPublished
	if err := config.DB.Save(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func DeleteAdminContent(contentID uint) error {
	var content models.AdminContent
	if err := config.DB.First(&content, contentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return config.DB.Delete(&content).Error
}

// ---------- Subscriptions (read/update mirror of the billing provider) ----------

func ListSubscriptions() ([]models.Subscription, error) {
	var subs []models.Subscription
	err := config.DB.Order("id asc").Find(&subs).Error
	return subs, err
}

func UpdateSubscription(subscriptionID uint, plan, status string, expiresAt *time.Time) (*models.Subscription, error) {
	var sub models.Subscription
	if err := config.DB.First(&sub, subscriptionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if plan != "" {
		sub.Plan = plan
	}
	if status != "" {
		sub.Status = status
	}
	if expiresAt != nil {
		sub.ExpiresAt = expiresAt
	}
	if err := config.DB.Save(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}
