package services

import (
	"errors"
	"fmt"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

func ListEnrollments(userID uint) ([]models.ProgramEnrollment, error) {
	var enrollments []models.ProgramEnrollment
	err := config.DB.
		Preload("Program").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&enrollments).Error
	return enrollments, err
}

// Enroll creates the progress record for (user, program). Any existing
// row for the pair conflicts, completed or not.
func Enroll(userID, programID uint) (*models.ProgramEnrollment, error) {
	if _, err := GetProgram(programID); err != nil {
		return nil, err
	}

	var existing models.ProgramEnrollment
	err := config.DB.Where("user_id = ? AND program_id = ?", userID, programID).First(&existing).Error
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := models.ProgramEnrollment{
		UserID:        userID,
		ProgramID:     programID,
		EnrolledAt:    time.Now(),
		CurrentDay:    1,
		CompletedDays: models.IntList{},
	}
	if err := config.DB.Create(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// MarkDayComplete records a finished program day. Idempotent on the day
// set; derived fields are recomputed either way. Day numbers outside
// 1..DurationDays are accepted as received.
func MarkDayComplete(userID, enrollmentID uint, day int) (*models.ProgramEnrollment, error) {
	var enrollment models.ProgramEnrollment
	if err := config.DB.Preload("Program").First(&enrollment, enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if enrollment.UserID != userID {
		return nil, ErrForbidden
	}

	if !enrollment.CompletedDays.Contains(day) {
		enrollment.CompletedDays = append(enrollment.CompletedDays, day)
	}

	enrollment.CurrentDay = enrollment.CompletedDays.Max() + 1
	wasCompleted := enrollment.IsCompleted
	enrollment.IsCompleted = len(enrollment.CompletedDays) >= enrollment.Program.DurationDays
	if enrollment.IsCompleted && !wasCompleted {
		now := time.Now()
		enrollment.CompletedAt = &now
		EmitAlert(userID, "program_completed",
			fmt.Sprintf("You finished %s. Well done.", enrollment.Program.Title))
	}

	if err := config.DB.Save(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func Unenroll(userID, enrollmentID uint) error {
	var enrollment models.ProgramEnrollment
	if err := config.DB.First(&enrollment, enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if enrollment.UserID != userID {
		return ErrForbidden
	}
	// hard delete, no archival
	return config.DB.Unscoped().Delete(&enrollment).Error
}
