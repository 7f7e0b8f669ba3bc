package domain

import (
	"fmt"
	"time"

	"github.com/th-alves/nails-booking-service/pkg/types"
)

// SlotGrid returns the canonical daily time grid: one slot per whole hour
// from 08:00 to 17:00 inclusive, ascending. The grid is static; availability
// for a concrete date is the grid minus that date's confirmed bookings.
func SlotGrid() []types.TimeString {
	slots := make([]types.TimeString, 0, SlotsPerDay)
	for hour := FirstSlotHour; hour <= LastSlotHour; hour++ {
		slots = append(slots, types.TimeString(fmt.Sprintf("%02d:00", hour)))
	}
	return slots
}

// IsOnSlotGrid reports whether t is one of the canonical slots.
func IsOnSlotGrid(t types.TimeString) bool {
	for _, slot := range SlotGrid() {
		if slot == t {
			return true
		}
	}
	return false
}

// IsDateOfferable reports whether date can be offered for booking:
// a weekday that is not strictly before today. Both arguments are
// normalized to midnight before comparison.
func IsDateOfferable(date, today time.Time) bool {
	return !IsWeekend(date) && !IsDateInPast(date, today)
}

// IsWeekend reports whether date falls on Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsDateInPast reports whether date is strictly before today,
// comparing calendar days only.
func IsDateInPast(date, today time.Time) bool {
	return truncateToDay(date).Before(truncateToDay(today))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
