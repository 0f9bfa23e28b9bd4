package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

type SleepToolInput struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	DurationMinutes int    `json:"duration_minutes"`
	AudioURL        string `json:"audio_url"`
	IsPremium       bool   `json:"is_premium"`
}

func ListSleepTools() ([]models.SleepTool, error) {
	var tools []models.SleepTool
	err := config.DB.Order("id asc").Find(&tools).Error
	return tools, err
}

func GetSleepTool(toolID uint) (*models.SleepTool, error) {
	var tool models.SleepTool
	if err := config.DB.First(&tool, toolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tool, nil
}

func CreateSleepTool(input SleepToolInput) (*models.SleepTool, error) {
	tool := models.SleepTool{
		Title:           input.Title,
		Description:     input.Description,
		Category:        input.Category,
		DurationMinutes: input.DurationMinutes,
		AudioURL:        input.AudioURL,
		IsPremium:       input.IsPremium,
	}
	if err := config.DB.Create(&tool).Error; err != nil {
		return nil, err
	}
	return &tool, nil
}

func UpdateSleepTool(toolID uint, input SleepToolInput) (*models.SleepTool, error) {
	tool, err := GetSleepTool(toolID)
	if err != nil {
		return nil, err
	}
	tool.Title = input.Title
	tool.Description = input.Description
	tool.Category = input.Category
	tool.DurationMinutes = input.DurationMinutes
	tool.AudioURL = input.AudioURL
	tool.IsPremium = input.IsPremium
	if err := config.DB.Save(tool).Error; err != nil {
		return nil, err
	}
	return tool, nil
}

func DeleteSleepTool(toolID uint) error {
	tool, err := GetSleepTool(toolID)
	if err != nil {
		return err
	}
	return config.DB.Delete(tool).Error
}
