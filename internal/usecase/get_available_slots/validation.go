package get_available_slots

import (
	"fmt"
	"time"

	"github.com/th-alves/nails-booking-service/internal/domain"
)

// validateRequest checks the request shape.
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateDate rejects weekends and past dates.
func validateDate(date, now time.Time) error {
	if domain.IsWeekend(date) {
		return ErrWeekend
	}
	if domain.IsDateInPast(date, now) {
		return ErrPastDate
	}
	return nil
}
