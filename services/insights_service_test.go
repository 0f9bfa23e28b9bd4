package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trendingFixture(t *testing.T) (*InsightsService, time.Time, map[string]uint) {
	db := newTestDB(t)
	svc := NewInsightsService(db)
	today := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	ids := map[string]uint{}
	for _, title := range []string{"Calm Mornings", "Deep Sleep", "Move Daily"} {
		program, err := CreateProgram(ProgramInput{Title: title, DurationDays: 7})
		require.NoError(t, err)
		ids[title] = program.ID
	}
	return svc, today, ids
}

func record(t *testing.T, svc *InsightsService, programID uint, date string, users int) {
	t.Helper()
	_, err := svc.RecordAnalytics(context.Background(), programID, date, users)
	require.NoError(t, err)
}

func TestTrendingGrowthZeroPrevious(t *testing.T) {
	svc, today, ids := trendingFixture(t)

	// samples only in the current 7-day half
	record(t, svc, ids["Calm Mornings"], "2024-03-18", 40)

	out, err := svc.Trending(context.Background(), today)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	assert.Equal(t, ids["Calm Mornings"], out[0].ProgramID)
	assert.Equal(t, 40, out[0].ActiveUsers)
	assert.Equal(t, 0.0, out[0].GrowthPct, "zero previous window short-circuits to 0")
}

func TestTrendingGrowthRounding(t *testing.T) {
	svc, today, ids := trendingFixture(t)

	// previous half: 2024-03-07 .. 2024-03-13, current: 2024-03-14 .. 2024-03-20
	record(t, svc, ids["Deep Sleep"], "2024-03-10", 30)
	record(t, svc, ids["Deep Sleep"], "2024-03-15", 40)

	out, err := svc.Trending(context.Background(), today)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	// 100 * (40-30)/30 = 33.333... -> 33.3
	assert.Equal(t, ids["Deep Sleep"], out[0].ProgramID)
	assert.Equal(t, 33.3, out[0].GrowthPct)
}

func TestTrendingWindowBoundaries(t *testing.T) {
	svc, today, ids := trendingFixture(t)

	record(t, svc, ids["Move Daily"], "2024-03-06", 99) // outside the 14-day window
	record(t, svc, ids["Move Daily"], "2024-03-07", 10) // first day of previous half
	record(t, svc, ids["Move Daily"], "2024-03-14", 20) // first day of current half

	out, err := svc.Trending(context.Background(), today)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	assert.Equal(t, 20, out[0].ActiveUsers)
	assert.Equal(t, 100.0, out[0].GrowthPct)
}

func TestTrendingRanksTopFive(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsightsService(db)
	today := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	var ids []uint
	for i := 0; i < 7; i++ {
		program, err := CreateProgram(ProgramInput{Title: "P", DurationDays: 3})
		require.NoError(t, err)
		ids = append(ids, program.ID)
		record(t, svc, program.ID, "2024-03-18", (i+1)*10)
	}

	out, err := svc.Trending(context.Background(), today)
	require.NoError(t, err)
	require.Len(t, out, 5)

	assert.Equal(t, ids[6], out[0].ProgramID)
	assert.Equal(t, 70, out[0].ActiveUsers)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].ActiveUsers, out[i].ActiveUsers)
	}
}

func TestCommunityStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsightsService(db)

	programID := seedProgram(t, 1)
	other := seedProgram(t, 3)

	e1, err := Enroll(1, programID)
	require.NoError(t, err)
	_, err = Enroll(2, other)
	require.NoError(t, err)
	_, err = MarkDayComplete(1, e1.ID, 1)
	require.NoError(t, err)

	out, err := svc.Community(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), out.TotalEnrollments)
	assert.Equal(t, int64(1), out.CompletedEnrollments)
	assert.Equal(t, 50.0, out.CompletionRatePct)
	assert.Equal(t, int64(2), out.ActivePrograms)
}
