package bookingwidget

import (
	"errors"
	"fmt"
)

// Submission and availability failures, one sentinel per outcome the
// embedding UI must present differently.
var (
	// ErrSlotTaken is the canonical race outcome: another client booked the
	// slot between the availability check and the submit. The user has to
	// pick another time; retrying the same slot is pointless.
	ErrSlotTaken = errors.New("slot already taken")

	// ErrWeekendRejected and ErrPastDateRejected are date rejections the
	// backend reports for requests that slipped past the local predicate.
	ErrWeekendRejected  = errors.New("date falls on a weekend")
	ErrPastDateRejected = errors.New("date is in the past")

	// ErrInvalidFields covers well-formed rejections that are neither a
	// weekend nor a past date; the wrapped text carries the backend message.
	ErrInvalidFields = errors.New("invalid booking fields")

	// ErrUnprocessableInput is a semantic field failure (name too short,
	// phone too short).
	ErrUnprocessableInput = errors.New("unprocessable booking input")

	// ErrServerFault is any other server-side failure.
	ErrServerFault = errors.New("booking backend fault")

	// ErrUnreachable means no response arrived at all (network or timeout).
	ErrUnreachable = errors.New("booking backend unreachable")
)

func invalidFields(message string) error {
	if message == "" {
		return ErrInvalidFields
	}
	return fmt.Errorf("%w: %s", ErrInvalidFields, message)
}
