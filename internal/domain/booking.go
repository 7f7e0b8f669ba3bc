package domain

import (
	"time"

	"github.com/th-alves/nails-booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents one appointment at the studio.
// At most one confirmed booking exists per (date, start_time) pair;
// the storage layer enforces this invariant.
type Booking struct {
	ID          string // UUID
	Date        time.Time
	StartTime   types.TimeString
	ClientName  string
	ClientPhone string
	Notes       string
	Status      BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// BookingsFilter narrows booking list queries.
type BookingsFilter struct {
	Date   *time.Time     // nil = all dates
	Status *BookingStatus // nil = all statuses
}
