package services

import (
	"errors"
	"fmt"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

var renewalItemTypes = map[string]bool{"program": true, "ritual": true, "tool": true}

func ListSavedItems(userID uint) ([]models.SavedRenewalItem, error) {
	var items []models.SavedRenewalItem
	err := config.DB.Where("user_id = ?", userID).Order("id asc").Find(&items).Error
	return items, err
}

// SaveItem bookmarks a program/ritual/tool. Duplicate (user, item) saves
// conflict.
func SaveItem(userID uint, itemType string, itemID uint) (*models.SavedRenewalItem, error) {
	if !renewalItemTypes[itemType] {
		return nil, fmt.Errorf("unknown item type %q", itemType)
	}

	var existing models.SavedRenewalItem
	err := config.DB.Where("user_id = ? AND item_id = ?", userID, itemID).First(&existing).Error
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := models.SavedRenewalItem{UserID: userID, ItemType: itemType, ItemID: itemID}
	if err := config.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func SetItemPaused(userID, savedItemID uint, paused bool) (*models.SavedRenewalItem, error) {
	var item models.SavedRenewalItem
	if err := config.DB.First(&item, savedItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if item.UserID != userID {
		return nil, ErrForbidden
	}

	item.IsPaused = paused
	if err := config.DB.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func DeleteSavedItem(userID, savedItemID uint) error {
	var item models.SavedRenewalItem
	if err := config.DB.First(&item, savedItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if item.UserID != userID {
		return ErrForbidden
	}
	return config.DB.Delete(&item).Error
}
