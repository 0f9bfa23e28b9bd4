package services

import (
	"errors"
	"fmt"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

type ProgramDayInput struct {
	Day      int    `json:"day"`
	Title    string `json:"title"`
	Activity string `json:"activity"`
}

type ProgramInput struct {
	ProgramType     string            `json:"program_type"`
	Title           string            `json:"title" binding:"required"`
	Description     string            `json:"description"`
	DurationDays    int               `json:"duration_days" binding:"required,min=1"`
	IsPremium       bool              `json:"is_premium"`
	DailyActivities []ProgramDayInput `json:"daily_activities"`
}

func ListPrograms() ([]models.WellnessProgram, error) {
	var programs []models.WellnessProgram
	err := config.DB.
		Preload("DailyActivities", func(db *gorm.DB) *gorm.DB { return db.Order("day asc") }).
		Order("id asc").
		Find(&programs).Error
	return programs, err
}

func GetProgram(programID uint) (*models.WellnessProgram, error) {
	var program models.WellnessProgram
	err := config.DB.
		Preload("DailyActivities", func(db *gorm.DB) *gorm.DB { return db.Order("day asc") }).
		First(&program, programID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &program, nil
}

func CreateProgram(input ProgramInput) (*models.WellnessProgram, error) {
	if input.DurationDays < 1 {
		return nil, fmt.Errorf("duration_days must be at least 1")
	}
	program := models.WellnessProgram{
		ProgramType:  input.ProgramType,
		Title:        input.Title,
		Description:  input.Description,
		DurationDays: input.DurationDays,
		IsPremium:    input.IsPremium,
	}
	for _, d := range input.DailyActivities {
		if d.Day < 1 || d.Day > input.DurationDays {
			return nil, fmt.Errorf("day %d out of range 1..%d", d.Day, input.DurationDays)
		}
		program.DailyActivities = append(program.DailyActivities, models.ProgramDailyActivity{
			Day:      d.Day,
			Title:    d.Title,
			Activity: d.Activity,
		})
	}
	if err := config.DB.Create(&program).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

func UpdateProgram(programID uint, input ProgramInput) (*models.WellnessProgram, error) {
	program, err := GetProgram(programID)
	if err != nil {
		return nil, err
	}
	if input.DurationDays < 1 {
		return nil, fmt.Errorf("duration_days must be at least 1")
	}

	program.ProgramType = input.ProgramType
	program.Title = input.Title
	program.Description = input.Description
	program.DurationDays = input.DurationDays
	program.IsPremium = input.IsPremium

	return program, config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("program_id = ?", program.ID).Delete(&models.ProgramDailyActivity{}).Error; err != nil {
			return err
		}
		program.DailyActivities = nil
		for _, d := range input.DailyActivities {
			if d.Day < 1 || d.Day > input.DurationDays {
				return fmt.Errorf("day %d out of range 1..%d", d.Day, input.DurationDays)
			}
			program.DailyActivities = append(program.DailyActivities, models.ProgramDailyActivity{
				ProgramID: program.ID,
				Day:       d.Day,
				Title:     d.Title,
				Activity:  d.Activity,
			})
		}
		return tx.Save(program).Error
	})
}

func DeleteProgram(programID uint) error {
	program, err := GetProgram(programID)
	if err != nil {
		return err
	}
	if err := config.DB.Where("program_id = ?", program.ID).Delete(&models.ProgramDailyActivity{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(program).Error
}
