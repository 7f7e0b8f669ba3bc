package types

import (
	"errors"
	"fmt"
	"time"
)

// timeLayout is the wire format for times of day (HH:MM, 24h).
const timeLayout = "15:04"

// ErrInvalidTimeString is returned when a string does not parse as HH:MM.
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString is a time of day in "HH:MM" format.
// The zero value is the empty string.
type TimeString string

// NewTimeString builds a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value parses as HH:MM.
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero reports whether the value is unset.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// AddMinutes returns the time of day shifted forward by the given number
// of minutes. The result wraps around midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(timeLayout)), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Lexicographic comparison is correct for zero-padded HH:MM values.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}
