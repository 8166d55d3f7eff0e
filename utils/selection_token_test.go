package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSelection() PendingSelection {
	return PendingSelection{
		RecipeID: 716429,
		Title:    "Pasta with Garlic",
		Calories: 584,
		Protein:  "19g",
		Fat:      "20g",
		Carbs:    "84g",
		Price:    5.85,
	}
}

func TestSelectionTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignSelectionToken(7, testSelection(), time.Minute)
	require.NoError(t, err)

	sel, err := ParseSelectionToken(token, 7)
	require.NoError(t, err)
	assert.Equal(t, testSelection(), *sel)
}

func TestSelectionTokenRejectsOtherUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignSelectionToken(7, testSelection(), time.Minute)
	require.NoError(t, err)

	_, err = ParseSelectionToken(token, 8)
	assert.ErrorIs(t, err, ErrInvalidSelectionToken)
}

func TestSelectionTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignSelectionToken(7, testSelection(), -time.Minute)
	require.NoError(t, err)

	_, err = ParseSelectionToken(token, 7)
	assert.ErrorIs(t, err, ErrInvalidSelectionToken)
}

func TestSelectionTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignSelectionToken(7, testSelection(), time.Minute)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ParseSelectionToken(tampered, 7)
	assert.ErrorIs(t, err, ErrInvalidSelectionToken)
}
