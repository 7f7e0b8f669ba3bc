package bookingwidget

import (
	"time"

	"github.com/th-alves/nails-booking-service/internal/domain"
	"github.com/th-alves/nails-booking-service/pkg/types"
)

// Session is the form state of one booking attempt. Each embedding creates
// its own Session; nothing here is shared process-wide, so two open booking
// forms never bleed into each other.
type Session struct {
	Date        time.Time
	Time        types.TimeString
	ClientName  string
	ClientPhone string
	Notes       string

	bookedDates map[string]struct{}
}

// NewSession creates an empty booking session.
func NewSession() *Session {
	return &Session{bookedDates: make(map[string]struct{})}
}

// Reset clears the form fields after a successful submission. The booked-dates
// summary survives the reset; it annotates the calendar, not the form.
func (s *Session) Reset() {
	s.Date = time.Time{}
	s.Time = ""
	s.ClientName = ""
	s.ClientPhone = ""
	s.Notes = ""
}

// HasBooking reports whether the booked-dates summary marks the date busy.
func (s *Session) HasBooking(date time.Time) bool {
	_, ok := s.bookedDates[date.Format(domain.DateFormat)]
	return ok
}

// BookedDateCount returns the number of distinct busy dates in the summary.
func (s *Session) BookedDateCount() int {
	return len(s.bookedDates)
}

func (s *Session) setBookedDates(dates map[string]struct{}) {
	s.bookedDates = dates
}
