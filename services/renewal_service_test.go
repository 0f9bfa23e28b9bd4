package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveItemDuplicateConflicts(t *testing.T) {
	newTestDB(t)

	_, err := SaveItem(1, "program", 7)
	require.NoError(t, err)

	_, err = SaveItem(1, "program", 7)
	assert.ErrorIs(t, err, ErrConflict)

	// same item, different user
	_, err = SaveItem(2, "program", 7)
	assert.NoError(t, err)
}

func TestSaveItemUnknownType(t *testing.T) {
	newTestDB(t)

	_, err := SaveItem(1, "playlist", 7)
	assert.Error(t, err)
}

func TestPauseToggleIndependentOfDeletion(t *testing.T) {
	newTestDB(t)

	item, err := SaveItem(1, "tool", 3)
	require.NoError(t, err)
	require.False(t, item.IsPaused)

	item, err = SetItemPaused(1, item.ID, true)
	require.NoError(t, err)
	assert.True(t, item.IsPaused)

	item, err = SetItemPaused(1, item.ID, false)
	require.NoError(t, err)
	assert.False(t, item.IsPaused)

	_, err = SetItemPaused(2, item.ID, true)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, DeleteSavedItem(1, item.ID))
	_, err = SetItemPaused(1, item.ID, true)
	assert.ErrorIs(t, err, ErrNotFound)
}
