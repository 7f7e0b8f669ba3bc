package get_available_slots

import (
	"context"
	"time"

	"github.com/th-alves/nails-booking-service/internal/domain"
	"github.com/th-alves/nails-booking-service/pkg/types"
)

// BookingRepository is the booking storage interface required by this use case
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// SlotCache is the optional availability cache. A nil cache disables caching.
type SlotCache interface {
	GetSlots(ctx context.Context, date time.Time) ([]types.TimeString, bool, error)
	SetSlots(ctx context.Context, date time.Time, slots []types.TimeString) error
}

// TimeProvider provides the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface required by this use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
