package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/th-alves/nails-booking-service/internal/domain"
	bookingRepo "github.com/th-alves/nails-booking-service/internal/infra/storage/booking"
	"github.com/th-alves/nails-booking-service/pkg/ptr"
	"github.com/th-alves/nails-booking-service/pkg/whatsapp"
)

// UseCase creates a booking while holding the (date, time) uniqueness
// invariant. The availability check and the insert run inside one
// serializable transaction; the partial unique index in storage is the
// backstop for anything the transaction isolation misses.
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	cache        SlotCache
	notifier     OwnerNotifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case. cache and notifier may be nil.
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	cache SlotCache,
	notifier OwnerNotifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		cache:        cache,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute validates and persists the booking request.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, client=%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.ClientName)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date rejected: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Locked read of the date's confirmed bookings (FOR UPDATE).
		status := domain.StatusConfirmed
		bookings, err := uc.bookingRepo.List(txCtx, domain.BookingsFilter{
			Date:   ptr.Ptr(req.Date),
			Status: &status,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		if isSlotTaken(bookings, req) {
			uc.logger.Warn("CreateBooking: slot %s %s already taken",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrSlotTaken
		}

		booking := &domain.Booking{
			ID:          uuid.NewString(),
			Date:        req.Date,
			StartTime:   req.StartTime,
			ClientName:  strings.TrimSpace(req.ClientName),
			ClientPhone: strings.TrimSpace(req.ClientPhone),
			Notes:       req.Notes,
			Status:      domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// The partial unique index catches conflicts that slipped past
			// the locked read (e.g. when running without transactions).
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s %s taken at insert",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%s", result.ID)

	if uc.cache != nil {
		if err := uc.cache.InvalidateDate(ctx, result.Date); err != nil {
			uc.logger.Error("CreateBooking: cache invalidation failed: %v", err)
		}
	}

	if uc.notifier != nil {
		summary := whatsapp.BookingSummary{
			Date:        result.Date,
			Time:        result.StartTime.String(),
			ClientName:  result.ClientName,
			ClientPhone: result.ClientPhone,
			Notes:       result.Notes,
		}
		// Fire and forget; notification must not delay the response.
		go uc.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), summary)
	}

	return &Response{
		ID:          result.ID,
		Date:        result.Date,
		StartTime:   result.StartTime,
		ClientName:  result.ClientName,
		ClientPhone: result.ClientPhone,
		Notes:       result.Notes,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
