package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/th-alves/nails-booking-service/internal/domain"
	bookingRepo "github.com/th-alves/nails-booking-service/internal/infra/storage/booking"
	"github.com/th-alves/nails-booking-service/internal/service/bookings/models"
	"github.com/th-alves/nails-booking-service/pkg/ptr"
	"github.com/th-alves/nails-booking-service/pkg/whatsapp"
)

// Service covers booking reads, cancellation and dashboard stats.
// Creation lives in its own use case because of its transactional shape.
type Service struct {
	bookingRepo  BookingRepository
	cache        SlotCache
	notifier     OwnerNotifier
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the bookings service. cache and notifier may be nil.
func NewService(bookingRepo BookingRepository, cache SlotCache, notifier OwnerNotifier, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		cache:        cache,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID fetches one booking by its UUID.
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List fetches bookings, optionally filtered by date and status,
// ordered by date then start time.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, date=%v, status=%v", req.Date, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel cancels a booking, freeing its slot.
func (s *Service) Cancel(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		// Already cancelled reads the same as absent to the caller.
		s.logger.Warn("Cancel: booking id=%s already cancelled", id)
		return nil, ErrBookingNotFound
	}

	if err := s.bookingRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled

	if s.cache != nil {
		if err := s.cache.InvalidateDate(ctx, booking.Date); err != nil {
			s.logger.Error("Cancel: cache invalidation failed: %v", err)
		}
	}

	if s.notifier != nil {
		summary := whatsapp.BookingSummary{
			Date:        booking.Date,
			Time:        booking.StartTime.String(),
			ClientName:  booking.ClientName,
			ClientPhone: booking.ClientPhone,
		}
		go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), summary)
	}

	s.logger.Info("Cancel: cancelled booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// GetStats aggregates confirmed booking counts for the dashboard:
// all time, today and the current month.
func (s *Service) GetStats(ctx context.Context) (*models.StatsResponse, error) {
	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)
	tomorrow := today.AddDate(0, 0, 1)

	total, err := s.bookingRepo.CountConfirmed(ctx, nil, nil)
	if err != nil {
		s.logger.Error("GetStats: failed to count total bookings: %v", err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	todayCount, err := s.bookingRepo.CountConfirmed(ctx, ptr.Ptr(today), ptr.Ptr(tomorrow))
	if err != nil {
		s.logger.Error("GetStats: failed to count today's bookings: %v", err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	monthCount, err := s.bookingRepo.CountConfirmed(ctx, ptr.Ptr(monthStart), ptr.Ptr(nextMonth))
	if err != nil {
		s.logger.Error("GetStats: failed to count month's bookings: %v", err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	return &models.StatsResponse{
		TotalBookings: total,
		TodayBookings: todayCount,
		MonthBookings: monthCount,
		GeneratedAt:   now.UTC(),
	}, nil
}
