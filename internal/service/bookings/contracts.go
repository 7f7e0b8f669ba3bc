package bookings

import (
	"context"
	"time"

	"github.com/th-alves/nails-booking-service/internal/domain"
	"github.com/th-alves/nails-booking-service/pkg/whatsapp"
)

// BookingRepository is the booking storage interface required by this service
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string) error
	CountConfirmed(ctx context.Context, from, to *time.Time) (int64, error)
}

// SlotCache invalidates cached availability after a cancellation.
// A nil cache disables invalidation.
type SlotCache interface {
	InvalidateDate(ctx context.Context, date time.Time) error
}

// OwnerNotifier announces cancelled bookings to the studio
type OwnerNotifier interface {
	NotifyBookingCancelled(ctx context.Context, summary whatsapp.BookingSummary)
}

// TimeProvider provides the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface required by this service
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
