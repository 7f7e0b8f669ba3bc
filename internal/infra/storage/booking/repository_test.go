package booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/th-alves/nails-booking-service/internal/domain"
	"github.com/th-alves/nails-booking-service/pkg/ptr"
)

var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:          "0f8c2f5e-0000-4000-8000-000000000001",
		Date:        testDate,
		StartTime:   "09:00",
		ClientName:  "Maria",
		ClientPhone: "(11) 99999-9999",
		Status:      domain.StatusConfirmed,
	}
}

func bookingRows(bookings ...*domain.Booking) *sqlmock.Rows {
	rows := sqlmock.NewRows(bookingColumns)
	for _, b := range bookings {
		rows.AddRow(b.ID, b.Date, string(b.StartTime), b.ClientName,
			b.ClientPhone, b.Notes, string(b.Status), b.CreatedAt, b.UpdatedAt)
	}
	return rows
}

func TestCreate_Success(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs("0f8c2f5e-0000-4000-8000-000000000001", testDate, "09:00",
			"Maria", "(11) 99999-9999", "", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), testBooking())
	require.NoError(t, err)

	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolationMapsToSlotTaken(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), testBooking())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_Success(t *testing.T) {
	repo, mock := newMockRepo(t)
	b := testBooking()

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs(b.ID).
		WillReturnRows(bookingRows(b))

	got, err := repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, b.StartTime, got.StartTime)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
}

func TestList_FiltersAndOrder(t *testing.T) {
	repo, mock := newMockRepo(t)
	b := testBooking()

	mock.ExpectQuery("SELECT (.+) FROM bookings (.+) ORDER BY date ASC, start_time ASC").
		WithArgs(testDate, "confirmed").
		WillReturnRows(bookingRows(b))

	status := domain.StatusConfirmed
	got, err := repo.List(context.Background(), domain.BookingsFilter{
		Date:   ptr.Ptr(testDate),
		Status: &status,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)
}

func TestList_EmptyResult(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WillReturnRows(bookingRows())

	got, err := repo.List(context.Background(), domain.BookingsFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestCancel_Success(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE bookings SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Cancel(context.Background(), "0f8c2f5e-0000-4000-8000-000000000001")
	assert.NoError(t, err)
}

func TestCancel_AbsentOrAlreadyCancelled(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE bookings SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Cancel(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCountConfirmed(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountConfirmed(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestCountConfirmed_RangeArgs(t *testing.T) {
	repo, mock := newMockRepo(t)
	from := testDate
	to := testDate.AddDate(0, 1, 0)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("confirmed", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountConfirmed(context.Background(), &from, &to)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
