package dashboard_stats

import (
	"context"

	"github.com/th-alves/nails-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetStats(ctx context.Context) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
