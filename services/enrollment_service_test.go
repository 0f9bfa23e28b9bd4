package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProgram(t *testing.T, days int) uint {
	t.Helper()
	input := ProgramInput{Title: "Reset", ProgramType: "mindfulness", DurationDays: days}
	for d := 1; d <= days; d++ {
		input.DailyActivities = append(input.DailyActivities, ProgramDayInput{
			Day: d, Title: "Day", Activity: "Practice",
		})
	}
	program, err := CreateProgram(input)
	require.NoError(t, err)
	return program.ID
}

func TestEnrollUnknownProgram(t *testing.T) {
	newTestDB(t)

	_, err := Enroll(1, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnrollTwiceConflicts(t *testing.T) {
	newTestDB(t)
	programID := seedProgram(t, 3)

	_, err := Enroll(1, programID)
	require.NoError(t, err)

	_, err = Enroll(1, programID)
	assert.ErrorIs(t, err, ErrConflict)

	// another user is unaffected
	_, err = Enroll(2, programID)
	assert.NoError(t, err)
}

func TestEnrollAfterCompletionStillConflicts(t *testing.T) {
	newTestDB(t)
	programID := seedProgram(t, 1)

	enrollment, err := Enroll(1, programID)
	require.NoError(t, err)

	enrollment, err = MarkDayComplete(1, enrollment.ID, 1)
	require.NoError(t, err)
	require.True(t, enrollment.IsCompleted)

	_, err = Enroll(1, programID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestMarkDayCompleteOutOfOrder(t *testing.T) {
	newTestDB(t)
	programID := seedProgram(t, 3)

	enrollment, err := Enroll(1, programID)
	require.NoError(t, err)
	assert.Equal(t, 1, enrollment.CurrentDay)

	enrollment, err = MarkDayComplete(1, enrollment.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, enrollment.CurrentDay)
	assert.False(t, enrollment.IsCompleted)

	enrollment, err = MarkDayComplete(1, enrollment.ID, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, []int(enrollment.CompletedDays))
	assert.Equal(t, 3, enrollment.CurrentDay)
	assert.False(t, enrollment.IsCompleted)
	assert.Nil(t, enrollment.CompletedAt)

	enrollment, err = MarkDayComplete(1, enrollment.ID, 3)
	require.NoError(t, err)
	assert.True(t, enrollment.IsCompleted)
	require.NotNil(t, enrollment.CompletedAt)
}

func TestMarkDayCompleteIdempotent(t *testing.T) {
	newTestDB(t)
	programID := seedProgram(t, 3)

	enrollment, err := Enroll(1, programID)
	require.NoError(t, err)

	first, err := MarkDayComplete(1, enrollment.ID, 2)
	require.NoError(t, err)
	second, err := MarkDayComplete(1, enrollment.ID, 2)
	require.NoError(t, err)

	assert.Equal(t, len(first.CompletedDays), len(second.CompletedDays))
	assert.Equal(t, first.CurrentDay, second.CurrentDay)
	assert.Equal(t, first.IsCompleted, second.IsCompleted)
}

func TestMarkDayCompleteOwnership(t *testing.T) {
	newTestDB(t)
	programID := seedProgram(t, 3)

	enrollment, err := Enroll(1, programID)
	require.NoError(t, err)

	_, err = MarkDayComplete(2, enrollment.ID, 1)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = MarkDayComplete(1, 999, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnenroll(t *testing.T) {
	newTestDB(t)
	programID := seedProgram(t, 3)

	enrollment, err := Enroll(1, programID)
	require.NoError(t, err)

	assert.ErrorIs(t, Unenroll(2, enrollment.ID), ErrForbidden)
	require.NoError(t, Unenroll(1, enrollment.ID))
	assert.ErrorIs(t, Unenroll(1, enrollment.ID), ErrNotFound)

	// the pair can be re-enrolled after the hard delete
	_, err = Enroll(1, programID)
	assert.NoError(t, err)
}
