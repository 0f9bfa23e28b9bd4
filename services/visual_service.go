package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

func ListVisualRhythms() ([]models.VisualRhythm, error) {
	var visuals []models.VisualRhythm
	err := config.DB.Order("sort_order asc, id asc").Find(&visuals).Error
	return visuals, err
}

// CreateVisualRhythm uploads the data-URI image to S3 and stores the
// resulting URL.
func CreateVisualRhythm(title, category, imageBase64 string, sortOrder int) (*models.VisualRhythm, error) {
	url, err := utils.UploadBase64ImageToS3(imageBase64, "visual-rhythms")
	if err != nil {
		return nil, err
	}
	visual := models.VisualRhythm{
		Title:     title,
		Category:  category,
		ImageURL:  url,
		SortOrder: sortOrder,
	}
	if err := config.DB.Create(&visual).Error; err != nil {
		return nil, err
	}
	return &visual, nil
}

func DeleteVisualRhythm(visualID uint) error {
	var visual models.VisualRhythm
	if err := config.DB.First(&visual, visualID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return config.DB.Delete(&visual).Error
}
