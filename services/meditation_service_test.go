package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeditationStatsStreak(t *testing.T) {
	newTestDB(t)

	for _, date := range []string{"2024-03-13", "2024-03-14", "2024-03-15"} {
		_, err := CreateMeditationSession(1, models.MeditationSession{Date: date, PracticeType: "breathwork", DurationMinutes: 10})
		require.NoError(t, err)
	}
	// gap on 03-11 breaks the run
	_, err := CreateMeditationSession(1, models.MeditationSession{Date: "2024-03-10", PracticeType: "body_scan", DurationMinutes: 20})
	require.NoError(t, err)

	stats, err := GetMeditationStats(1, "2024-03-15")
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalSessions)
	assert.Equal(t, 50, stats.TotalMinutes)
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, map[string]int{"breathwork": 3, "body_scan": 1}, stats.PracticeBreakdown)
}

func TestMeditationStatsNoSessionToday(t *testing.T) {
	newTestDB(t)

	_, err := CreateMeditationSession(1, models.MeditationSession{Date: "2024-03-14", DurationMinutes: 10})
	require.NoError(t, err)

	stats, err := GetMeditationStats(1, "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.CurrentStreak)
}
