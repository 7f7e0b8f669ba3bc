package get_available_slots

import "errors"

var (
	// ErrWeekend is returned for Saturday and Sunday dates
	ErrWeekend = errors.New("get_available_slots: studio is closed on weekends")

	// ErrPastDate is returned for dates before today
	ErrPastDate = errors.New("get_available_slots: date is in the past")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned for unexpected use case failures
	ErrInternal = errors.New("get_available_slots: internal error")
)
