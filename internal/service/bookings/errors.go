package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	// or is already cancelled
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrInternal is returned for unexpected service failures
	ErrInternal = errors.New("bookings.service: internal error")
)
