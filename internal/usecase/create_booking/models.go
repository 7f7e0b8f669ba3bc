package create_booking

import (
	"time"

	"github.com/th-alves/nails-booking-service/pkg/types"
)

// Request is a booking attempt for one (date, time) slot
type Request struct {
	Date        time.Time        // booking date, time component ignored
	StartTime   types.TimeString // slot start, e.g. "09:00"
	ClientName  string
	ClientPhone string
	Notes       string // optional
}

// Response is the confirmed booking
type Response struct {
	ID          string
	Date        time.Time
	StartTime   types.TimeString
	ClientName  string
	ClientPhone string
	Notes       string
	Status      string

	CreatedAt time.Time
	UpdatedAt time.Time
}
