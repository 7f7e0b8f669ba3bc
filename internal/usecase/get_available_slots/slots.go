package get_available_slots

import (
	"github.com/th-alves/nails-booking-service/internal/domain"
	"github.com/th-alves/nails-booking-service/pkg/types"
)

// freeSlots returns the canonical grid minus the start times of active
// bookings. Order follows the grid (ascending).
func freeSlots(bookings []*domain.Booking) []types.TimeString {
	booked := make(map[types.TimeString]struct{}, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			booked[b.StartTime] = struct{}{}
		}
	}

	free := make([]types.TimeString, 0, domain.SlotsPerDay)
	for _, slot := range domain.SlotGrid() {
		if _, taken := booked[slot]; !taken {
			free = append(free, slot)
		}
	}

	return free
}
