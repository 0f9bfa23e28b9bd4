package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

type MeditationSummary struct {
	Date              string         `json:"date"`
	TotalSessions     int            `json:"total_sessions"`
	TotalMinutes      int            `json:"total_minutes"`
	PracticeBreakdown map[string]int `json:"practice_breakdown"`
}

type MeditationStats struct {
	TotalSessions     int            `json:"total_sessions"`
	TotalMinutes      int            `json:"total_minutes"`
	PracticeBreakdown map[string]int `json:"practice_breakdown"`
	CurrentStreak     int            `json:"current_streak"`
}

func ListMeditationSessions(userID uint, date string) ([]models.MeditationSession, error) {
	var sessions []models.MeditationSession
	q := config.DB.Where("user_id = ?", userID)
	if date != "" {
		q = q.Where("date = ?", date)
	}
	err := q.Order("id asc").Find(&sessions).Error
	return sessions, err
}

func CreateMeditationSession(userID uint, session models.MeditationSession) (*models.MeditationSession, error) {
	if err := ValidateDate(session.Date); err != nil {
		return nil, err
	}
	session.UserID = userID
	if err := config.DB.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func MeditationSummaryForDate(userID uint, date string) (*MeditationSummary, error) {
	sessions, err := ListMeditationSessions(userID, date)
	if err != nil {
		return nil, err
	}

	out := &MeditationSummary{
		Date:              date,
		TotalSessions:     len(sessions),
		PracticeBreakdown: map[string]int{},
	}
	for _, s := range sessions {
		out.TotalMinutes += s.DurationMinutes
		if s.PracticeType != "" {
			out.PracticeBreakdown[s.PracticeType]++
		}
	}
	return out, nil
}

// GetMeditationStats folds the full history: totals, per-practice counts
// and the run of consecutive practiced days ending today.
func GetMeditationStats(userID uint, today string) (*MeditationStats, error) {
	sessions, err := ListMeditationSessions(userID, "")
	if err != nil {
		return nil, err
	}

	out := &MeditationStats{
		TotalSessions:     len(sessions),
		PracticeBreakdown: map[string]int{},
	}
	dates := map[string]bool{}
	for _, s := range sessions {
		out.TotalMinutes += s.DurationMinutes
		if s.PracticeType != "" {
			out.PracticeBreakdown[s.PracticeType]++
		}
		dates[s.Date] = true
	}

	d, err := time.Parse(dateLayout, today)
	if err != nil {
		return nil, err
	}
	for dates[d.Format(dateLayout)] {
		out.CurrentStreak++
		d = d.AddDate(0, 0, -1)
	}
	return out, nil
}

func DeleteMeditationSession(userID, sessionID uint) error {
	var session models.MeditationSession
	if err := config.DB.First(&session, sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if session.UserID != userID {
		return ErrForbidden
	}
	return config.DB.Delete(&session).Error
}
