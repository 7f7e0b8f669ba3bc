package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/th-alves/nails-booking-service/pkg/types"
)

// 2026-08-31 is a Monday.
var monday = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func TestSlotGrid(t *testing.T) {
	grid := SlotGrid()

	require.Len(t, grid, 10)
	assert.Equal(t, types.TimeString("08:00"), grid[0])
	assert.Equal(t, types.TimeString("17:00"), grid[len(grid)-1])

	for i := 1; i < len(grid); i++ {
		assert.True(t, grid[i-1].IsBefore(grid[i]), "grid must ascend: %s before %s", grid[i-1], grid[i])
	}
}

func TestIsOnSlotGrid(t *testing.T) {
	tests := []struct {
		slot types.TimeString
		want bool
	}{
		{"08:00", true},
		{"12:00", true},
		{"17:00", true},
		{"07:00", false},
		{"18:00", false},
		{"08:30", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsOnSlotGrid(tt.slot), "slot %q", tt.slot)
	}
}

func TestIsDateOfferable(t *testing.T) {
	today := monday

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"today", today, true},
		{"tomorrow", today.AddDate(0, 0, 1), true},
		{"next friday", today.AddDate(0, 0, 4), true},
		{"upcoming saturday", today.AddDate(0, 0, 5), false},
		{"upcoming sunday", today.AddDate(0, 0, 6), false},
		{"yesterday", today.AddDate(0, 0, -1), false},
		{"last week weekday", today.AddDate(0, 0, -7), false},
		{"next monday", today.AddDate(0, 0, 7), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDateOfferable(tt.date, today))
		})
	}
}

func TestIsDateInPast_IgnoresTimeOfDay(t *testing.T) {
	lateToday := monday.Add(23 * time.Hour)
	assert.False(t, IsDateInPast(monday, lateToday))

	earlyToday := monday.Add(1 * time.Minute)
	assert.False(t, IsDateInPast(lateToday, earlyToday))
}
