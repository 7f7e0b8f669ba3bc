package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/th-alves/nails-booking-service/internal/domain"
)

// validateRequest checks the request shape and field semantics.
// Shape problems map to ErrInvalidInput, field semantics to ErrUnprocessable.
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if !domain.IsOnSlotGrid(req.StartTime) {
		return ErrInvalidTimeSlot
	}

	if len(strings.TrimSpace(req.ClientName)) < domain.MinClientNameLength {
		return fmt.Errorf("%w: name must have at least %d characters", ErrUnprocessable, domain.MinClientNameLength)
	}
	if countDigits(req.ClientPhone) < domain.MinPhoneDigits {
		return fmt.Errorf("%w: phone must have at least %d digits", ErrUnprocessable, domain.MinPhoneDigits)
	}
	if len(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrUnprocessable, domain.MaxNotesLength)
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

// isSlotTaken reports whether any active booking already holds the slot.
func isSlotTaken(bookings []*domain.Booking, req *Request) bool {
	for _, b := range bookings {
		if b.IsActive() && b.StartTime == req.StartTime {
			return true
		}
	}
	return false
}

func countDigits(s string) int {
	count := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}
