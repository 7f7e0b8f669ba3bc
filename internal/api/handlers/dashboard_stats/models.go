package dashboard_stats

import (
	"time"

	"github.com/th-alves/nails-booking-service/internal/service/bookings/models"
)

// StatsJSON is the wire shape of the dashboard stats endpoint.
type StatsJSON struct {
	TotalBookings int64     `json:"total_bookings"`
	TodayBookings int64     `json:"today_bookings"`
	MonthBookings int64     `json:"month_bookings"`
	GeneratedAt   time.Time `json:"generated_at"`
}

func FromServiceStats(s *models.StatsResponse) *StatsJSON {
	return &StatsJSON{
		TotalBookings: s.TotalBookings,
		TodayBookings: s.TodayBookings,
		MonthBookings: s.MonthBookings,
		GeneratedAt:   s.GeneratedAt,
	}
}
