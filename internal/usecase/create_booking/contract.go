package create_booking

import (
	"context"
	"time"

	"github.com/th-alves/nails-booking-service/internal/domain"
	"github.com/th-alves/nails-booking-service/pkg/whatsapp"
)

// BookingRepository is the booking storage interface required by this use case
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// TransactionManager runs a function inside a serializable transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotCache invalidates cached availability after a successful booking.
// A nil cache disables invalidation.
type SlotCache interface {
	InvalidateDate(ctx context.Context, date time.Time) error
}

// OwnerNotifier announces new bookings to the studio
type OwnerNotifier interface {
	NotifyBookingCreated(ctx context.Context, summary whatsapp.BookingSummary)
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
