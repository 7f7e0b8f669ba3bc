package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/th-alves/nails-booking-service/internal/api/handlers"
	"github.com/th-alves/nails-booking-service/internal/service/bookings"
)

const (
	msgInvalidBookingID = "ID de agendamento inválido"
	msgNotFound         = "agendamento não encontrado ou já cancelado"
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

// Handle PATCH /api/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	if _, err := uuid.Parse(bookingID); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidBookingID)
		return
	}

	booking, err := h.service.Cancel(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromServiceBooking(booking))
}
