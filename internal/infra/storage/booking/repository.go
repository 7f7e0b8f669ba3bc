package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/th-alves/nails-booking-service/internal/domain"
	"github.com/th-alves/nails-booking-service/pkg/dbmetrics"
	"github.com/th-alves/nails-booking-service/pkg/psqlbuilder"
)

// pgUniqueViolation is raised when the partial unique index on
// (date, start_time) WHERE status = 'confirmed' rejects an insert.
const pgUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"date",
	"start_time",
	"client_name",
	"client_phone",
	"notes",
	"status",
	"created_at",
	"updated_at",
}

// Repository persists bookings in PostgreSQL.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository over the given executor.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking. If the context carries an active transaction
// it is used, which is how the create-booking use case pairs the availability
// check with the insert. A unique-constraint violation maps to ErrSlotTaken:
// even outside a transaction the database rejects a second confirmed booking
// for the same (date, start_time).
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"date",
			"start_time",
			"client_name",
			"client_phone",
			"notes",
			"status",
		).
		Values(
			booking.ID,
			booking.Date,
			booking.StartTime,
			booking.ClientName,
			booking.ClientPhone,
			booking.Notes,
			booking.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID fetches a booking by its UUID.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List fetches bookings matching the filter, ordered by date then start time.
// Inside a transaction with a date filter the rows are locked (FOR UPDATE) so
// the availability check and the subsequent insert see a stable view.
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("date ASC, start_time ASC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": *filter.Date})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Cancel marks a booking cancelled, freeing its slot. Returns
// ErrBookingNotFound when the booking is absent or already cancelled.
func (r *Repository) Cancel(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CountConfirmed counts confirmed bookings, optionally within [from, to).
func (r *Repository) CountConfirmed(ctx context.Context, from, to *time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"status": domain.StatusConfirmed})

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *from})
	}
	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"date": *to})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountConfirmed - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountConfirmed - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Date,
		&booking.StartTime,
		&booking.ClientName,
		&booking.ClientPhone,
		&booking.Notes,
		&booking.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
