package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the query
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken is returned when an insert violates the unique
	// (date, start_time) constraint for confirmed bookings
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
