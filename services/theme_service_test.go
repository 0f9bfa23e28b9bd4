package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour int) time.Time {
	return time.Date(2024, 3, 15, hour, 0, 0, 0, time.UTC)
}

func TestTimeOfDaySlot(t *testing.T) {
	assert.Equal(t, "morning", TimeOfDaySlot(at(5)))
	assert.Equal(t, "morning", TimeOfDaySlot(at(11)))
	assert.Equal(t, "afternoon", TimeOfDaySlot(at(12)))
	assert.Equal(t, "evening", TimeOfDaySlot(at(17)))
	assert.Equal(t, "night", TimeOfDaySlot(at(21)))
	assert.Equal(t, "night", TimeOfDaySlot(at(3)))
}

func TestCurrentThemeSelection(t *testing.T) {
	newTestDB(t)

	_, err := CreateTheme(models.Theme{Name: "Dawn", TimeOfDay: "morning", Primary: "#FDE68A"})
	require.NoError(t, err)
	_, err = CreateTheme(models.Theme{Name: "Dusk", TimeOfDay: "evening", Primary: "#7C3AED"})
	require.NoError(t, err)

	theme, err := CurrentTheme(at(8))
	require.NoError(t, err)
	assert.Equal(t, "Dawn", theme.Name)

	theme, err = CurrentTheme(at(18))
	require.NoError(t, err)
	assert.Equal(t, "Dusk", theme.Name)

	// no night palette: falls back to the first theme
	theme, err = CurrentTheme(at(2))
	require.NoError(t, err)
	assert.Equal(t, "Dawn", theme.Name)
}

func TestCurrentThemeEmpty(t *testing.T) {
	newTestDB(t)

	_, err := CurrentTheme(at(8))
	assert.ErrorIs(t, err, ErrNotFound)
}
