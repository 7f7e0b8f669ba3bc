package get_available_slots

import (
	"context"
	"fmt"

	"github.com/th-alves/nails-booking-service/internal/domain"
	"github.com/th-alves/nails-booking-service/pkg/ptr"
)

// UseCase answers "which slots are still free on this date".
type UseCase struct {
	bookingRepo  BookingRepository
	cache        SlotCache
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case. cache may be nil to disable caching.
func NewUseCase(bookingRepo BookingRepository, cache SlotCache, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		cache:        cache,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute returns the free slots for the requested date.
// A fully booked date yields an empty slice, not an error.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date rejected: %v", err)
		return nil, err
	}

	if uc.cache != nil {
		slots, hit, err := uc.cache.GetSlots(ctx, req.Date)
		if err != nil {
			// Cache trouble never fails the request.
			uc.logger.Error("GetAvailableSlots: cache read failed: %v", err)
		} else if hit {
			uc.logger.Info("GetAvailableSlots: cache hit, %d free slots on %s",
				len(slots), req.Date.Format(domain.DateFormat))
			return &Response{Date: req.Date, Slots: slots}, nil
		}
	}

	status := domain.StatusConfirmed
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		Date:   ptr.Ptr(req.Date),
		Status: &status,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	slots := freeSlots(bookings)

	if uc.cache != nil {
		// A create committing between our read and this write can land a
		// stale list over its own invalidation. Availability is a snapshot,
		// not a lease; the short TTL bounds the window and the slot conflict
		// is still caught at submit time.
		if err := uc.cache.SetSlots(ctx, req.Date, slots); err != nil {
			uc.logger.Error("GetAvailableSlots: cache write failed: %v", err)
		}
	}

	uc.logger.Info("GetAvailableSlots: %d free slots on %s",
		len(slots), req.Date.Format(domain.DateFormat))

	return &Response{Date: req.Date, Slots: slots}, nil
}
