package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateAge(t *testing.T) {
	now := time.Now()

	// Birthday already passed this year.
	assert.Equal(t, 30, CalculateAge(now.AddDate(-30, 0, -1)))

	// Birthday is tomorrow — still 29.
	assert.Equal(t, 29, CalculateAge(now.AddDate(-30, 0, 1)))

	// Born today: the birthday counts.
	assert.Equal(t, 30, CalculateAge(now.AddDate(-30, 0, 0)))
}
