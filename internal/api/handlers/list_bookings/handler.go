package list_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/th-alves/nails-booking-service/internal/api/handlers"
	"github.com/th-alves/nails-booking-service/internal/domain"
	"github.com/th-alves/nails-booking-service/internal/service/bookings"
	"github.com/th-alves/nails-booking-service/internal/service/bookings/models"
)

const (
	msgInvalidDate   = "formato de data inválido, use YYYY-MM-DD"
	msgInvalidStatus = "status inválido"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bookings
// Query params: date (optional, YYYY-MM-DD), status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBookingsRequest{}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid date format: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidDate, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - %d bookings retrieved", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromServiceBookingList(result))
}
