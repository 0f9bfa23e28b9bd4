package services

import (
	"context"
	"math"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type InsightsService struct{ db *gorm.DB }

func NewInsightsService(db *gorm.DB) *InsightsService { return &InsightsService{db: db} }

// ---------- Trending ----------

type TrendingProgram struct {
	ProgramID   uint    `json:"program_id"`
	Title       string  `json:"title"`
	ProgramType string  `json:"program_type"`
	ActiveUsers int     `json:"active_users"`
	GrowthPct   float64 `json:"growth_pct"`
}

// Trending ranks programs by adoption over the last 7 days and compares
// against the 7 days before that. Recomputed from raw rows per request.
func (s *InsightsService) Trending(ctx context.Context, today time.Time) ([]TrendingProgram, error) {
	currentFrom := today.AddDate(0, 0, -6).Format(dateLayout)
	currentTo := today.Format(dateLayout)
	previousFrom := today.AddDate(0, 0, -13).Format(dateLayout)
	previousTo := today.AddDate(0, 0, -7).Format(dateLayout)

	current, err := s.sumActiveUsers(ctx, currentFrom, currentTo)
	if err != nil {
		return nil, err
	}
	previous, err := s.sumActiveUsers(ctx, previousFrom, previousTo)
	if err != nil {
		return nil, err
	}

	var programs []models.WellnessProgram
	if err := s.db.WithContext(ctx).Find(&programs).Error; err != nil {
		return nil, err
	}

	out := make([]TrendingProgram, 0, len(programs))
	for _, p := range programs {
		cur := current[p.ID]
		prev := previous[p.ID]
		growth := 0.0
		if prev > 0 {
			growth = round1(100 * float64(cur-prev) / float64(prev))
		}
		out = append(out, TrendingProgram{
			ProgramID:   p.ID,
			Title:       p.Title,
			ProgramType: p.ProgramType,
			ActiveUsers: cur,
			GrowthPct:   growth,
		})
	}

	// descending by current-window adoption, stable for equal counts
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].ActiveUsers > out[j-1].ActiveUsers; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	if len(out) > 5 {
		out = out[:5]
	}
	return out, nil
}

func (s *InsightsService) sumActiveUsers(ctx context.Context, from, to string) (map[uint]int, error) {
	var rows []models.ProgramAnalytics
	if err := s.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	sums := map[uint]int{}
	for _, r := range rows {
		sums[r.ProgramID] += r.ActiveUsers
	}
	return sums, nil
}

// ---------- Community ----------

type CommunityStats struct {
	TotalEnrollments     int64   `json:"total_enrollments"`
	CompletedEnrollments int64   `json:"completed_enrollments"`
	CompletionRatePct    float64 `json:"completion_rate_pct"`
	ActivePrograms       int64   `json:"active_programs"`
}

func (s *InsightsService) Community(ctx context.Context) (*CommunityStats, error) {
	out := &CommunityStats{}
	if err := s.db.WithContext(ctx).Model(&models.ProgramEnrollment{}).Count(&out.TotalEnrollments).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.ProgramEnrollment{}).
		Where("is_completed = ?", true).Count(&out.CompletedEnrollments).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.WellnessProgram{}).Count(&out.ActivePrograms).Error; err != nil {
		return nil, err
	}
	if out.TotalEnrollments > 0 {
		out.CompletionRatePct = round1(100 * float64(out.CompletedEnrollments) / float64(out.TotalEnrollments))
	}
	return out, nil
}

// ---------- Recording & totals ----------

func (s *InsightsService) RecordAnalytics(ctx context.Context, programID uint, date string, activeUsers int) (*models.ProgramAnalytics, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	if _, err := GetProgram(programID); err != nil {
		return nil, err
	}
	row := models.ProgramAnalytics{ProgramID: programID, Date: date, ActiveUsers: activeUsers}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

type ProgramStat struct {
	ProgramID        uint   `json:"program_id"`
	Title            string `json:"title"`
	TotalActiveUsers int    `json:"total_active_users"`
	SampleCount      int    `json:"sample_count"`
}

func (s *InsightsService) Stats(ctx context.Context) ([]ProgramStat, error) {
	var programs []models.WellnessProgram
	if err := s.db.WithContext(ctx).Order("id asc").Find(&programs).Error; err != nil {
		return nil, err
	}
	var rows []models.ProgramAnalytics
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	totals := map[uint]*ProgramStat{}
	out := make([]ProgramStat, 0, len(programs))
	for _, p := range programs {
		out = append(out, ProgramStat{ProgramID: p.ID, Title: p.Title})
		totals[p.ID] = &out[len(out)-1]
	}
	for _, r := range rows {
		if st, ok := totals[r.ProgramID]; ok {
			st.TotalActiveUsers += r.ActiveUsers
			st.SampleCount++
		}
	}
	return out, nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
