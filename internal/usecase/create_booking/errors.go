package create_booking

import "errors"

var (
	// ErrWeekend is returned for Saturday and Sunday dates
	ErrWeekend = errors.New("create_booking: studio is closed on weekends")

	// ErrPastDate is returned for dates before today
	ErrPastDate = errors.New("create_booking: date is in the past")

	// ErrSlotTaken is returned when the requested slot already has a
	// confirmed booking (the canonical race outcome)
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrInvalidTimeSlot is returned when the start time is not on the
	// canonical hourly grid
	ErrInvalidTimeSlot = errors.New("create_booking: time is not a valid slot")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrUnprocessable is returned for semantically invalid client fields
	// (name too short, phone too short, notes too long)
	ErrUnprocessable = errors.New("create_booking: unprocessable input")

	// ErrInternal is returned for unexpected use case failures
	ErrInternal = errors.New("create_booking: internal error")
)
