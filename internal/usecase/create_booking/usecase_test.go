package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/th-alves/nails-booking-service/internal/domain"
	bookingRepo "github.com/th-alves/nails-booking-service/internal/infra/storage/booking"
	"github.com/th-alves/nails-booking-service/pkg/types"
	"github.com/th-alves/nails-booking-service/pkg/whatsapp"
)

// 2026-09-07 is a Monday.
var testMonday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// fakeRepo keeps created bookings in memory, mimicking the storage contract
// including the unique-index rejection.
type fakeRepo struct {
	mu      sync.Mutex
	created []*domain.Booking
}

func (f *fakeRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*domain.Booking, 0)
	for _, b := range f.created {
		if filter.Date != nil && !b.Date.Equal(*filter.Date) {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, b := range f.created {
		if b.Status == domain.StatusConfirmed &&
			b.Date.Equal(booking.Date) && b.StartTime == booking.StartTime {
			return nil, bookingRepo.ErrSlotTaken
		}
	}

	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.created = append(f.created, booking)
	return booking, nil
}

// inlineTx runs the function without a real transaction; the fake repo is
// authoritative on conflicts either way.
type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type spyCache struct {
	mu          sync.Mutex
	invalidated []time.Time
}

func (s *spyCache) InvalidateDate(_ context.Context, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidated = append(s.invalidated, date)
	return nil
}

type spyNotifier struct {
	mu        sync.Mutex
	summaries []whatsapp.BookingSummary
	done      chan struct{}
}

func (s *spyNotifier) NotifyBookingCreated(_ context.Context, summary whatsapp.BookingSummary) {
	s.mu.Lock()
	s.summaries = append(s.summaries, summary)
	s.mu.Unlock()
	close(s.done)
}

func newTestUseCase(repo BookingRepository, cache SlotCache, notifier OwnerNotifier) *UseCase {
	uc := NewUseCase(repo, inlineTx{}, cache, notifier, noopLogger{})
	uc.timeProvider = &fixedTime{now: testMonday}
	return uc
}

func validRequest() *Request {
	return &Request{
		Date:        testMonday,
		StartTime:   "09:00",
		ClientName:  "Maria",
		ClientPhone: "(11) 99999-9999",
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, nil, nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = uuid.Parse(resp.ID)
	assert.NoError(t, err, "booking ID must be a UUID")
	assert.Equal(t, testMonday, resp.Date)
	assert.Equal(t, types.TimeString("09:00"), resp.StartTime)
	assert.Equal(t, "Maria", resp.ClientName)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_SameSlotTwiceYieldsSlotTaken(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, nil, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.ClientName = "Joana"
	second.ClientPhone = "(11) 98888-8888"

	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_DifferentSlotSameDateSucceeds(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, nil, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.StartTime = "10:00"
	_, err = uc.Execute(context.Background(), second)
	assert.NoError(t, err)
}

func TestExecute_CancelledBookingDoesNotBlockSlot(t *testing.T) {
	repo := &fakeRepo{created: []*domain.Booking{{
		ID:        uuid.NewString(),
		Date:      testMonday,
		StartTime: "09:00",
		Status:    domain.StatusCancelled,
	}}}
	uc := newTestUseCase(repo, nil, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_UniqueIndexBackstopMapsToSlotTaken(t *testing.T) {
	// List sees nothing, Create collides: the insert-time conflict path.
	repo := &conflictingRepo{}
	uc := newTestUseCase(repo, nil, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

type conflictingRepo struct{}

func (conflictingRepo) List(context.Context, domain.BookingsFilter) ([]*domain.Booking, error) {
	return nil, nil
}

func (conflictingRepo) Create(context.Context, *domain.Booking) (*domain.Booking, error) {
	return nil, bookingRepo.ErrSlotTaken
}

func TestExecute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"weekend", func(r *Request) { r.Date = testMonday.AddDate(0, 0, 5) }, ErrWeekend},
		{"past date", func(r *Request) { r.Date = testMonday.AddDate(0, 0, -1) }, ErrPastDate},
		{"zero date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidInput},
		{"empty time", func(r *Request) { r.StartTime = "" }, ErrInvalidInput},
		{"malformed time", func(r *Request) { r.StartTime = "9am" }, ErrInvalidInput},
		{"off-grid time", func(r *Request) { r.StartTime = "07:00" }, ErrInvalidTimeSlot},
		{"half-hour time", func(r *Request) { r.StartTime = "09:30" }, ErrInvalidTimeSlot},
		{"short name", func(r *Request) { r.ClientName = "M" }, ErrUnprocessable},
		{"short phone", func(r *Request) { r.ClientPhone = "9999" }, ErrUnprocessable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc := newTestUseCase(repo, nil, nil)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.created, "nothing may be persisted on validation failure")
		})
	}
}

func TestExecute_InvalidatesCacheAndNotifiesOwner(t *testing.T) {
	cache := &spyCache{}
	notifier := &spyNotifier{done: make(chan struct{})}
	uc := newTestUseCase(&fakeRepo{}, cache, notifier)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, cache.invalidated, 1)
	assert.Equal(t, testMonday, cache.invalidated[0])

	select {
	case <-notifier.done:
	case <-time.After(2 * time.Second):
		t.Fatal("owner notification never fired")
	}

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	require.Len(t, notifier.summaries, 1)
	assert.Equal(t, "Maria", notifier.summaries[0].ClientName)
	assert.Equal(t, "09:00", notifier.summaries[0].Time)
}

func TestExecute_StorageListFailure(t *testing.T) {
	uc := newTestUseCase(&failingRepo{}, nil, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

type failingRepo struct{}

func (failingRepo) List(context.Context, domain.BookingsFilter) ([]*domain.Booking, error) {
	return nil, errors.New("connection refused")
}

func (failingRepo) Create(context.Context, *domain.Booking) (*domain.Booking, error) {
	return nil, errors.New("connection refused")
}
