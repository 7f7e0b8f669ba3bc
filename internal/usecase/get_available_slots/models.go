package get_available_slots

import (
	"time"

	"github.com/th-alves/nails-booking-service/pkg/types"
)

// Request asks for the free slots of one date
type Request struct {
	Date time.Time // date to query, time component ignored
}

// Response carries the free slots of the requested date.
// Slots is ordered ascending and may be empty (fully booked day).
type Response struct {
	Date  time.Time
	Slots []types.TimeString
}
