package domain

// Daily slot grid boundaries. Appointments start on the hour,
// first one at 08:00 and last one at 17:00.
const (
	FirstSlotHour = 8
	LastSlotHour  = 17
	SlotsPerDay   = LastSlotHour - FirstSlotHour + 1
)

// Business validation constants
const (
	MinClientNameLength = 2
	MinPhoneDigits      = 10
	MaxNotesLength      = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
