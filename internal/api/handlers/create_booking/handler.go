package create_booking

import (
	"errors"
	"net/http"

	"github.com/th-alves/nails-booking-service/internal/api/handlers"
	createBooking "github.com/th-alves/nails-booking-service/internal/usecase/create_booking"
)

var (
	errInvalidDate = errors.New("invalid date format")
	errInvalidTime = errors.New("invalid time format")
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, use YYYY-MM-DD"
	msgInvalidTime        = "formato de horário inválido, use HH:MM"
	msgSlotTaken          = "este horário já foi agendado por outro cliente"
	msgWeekend            = "não atendemos nos finais de semana"
	msgPastDate           = "não é possível agendar em datas passadas"
	msgInvalidTimeSlot    = "horário fora da grade de atendimento"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, handlers.CodeInvalidTime, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, handlers.CodeInvalidDate, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, handlers.CodeSlotTaken, msgSlotTaken)

		case errors.Is(err, createBooking.ErrWeekend):
			h.logger.Warn("POST /bookings - Weekend rejected: date=%s", req.Date)
			handlers.RespondBadRequest(w, handlers.CodeWeekend, msgWeekend)

		case errors.Is(err, createBooking.ErrPastDate):
			h.logger.Warn("POST /bookings - Past date rejected: date=%s", req.Date)
			handlers.RespondBadRequest(w, handlers.CodePastDate, msgPastDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Time off the grid: time=%s", req.Time)
			handlers.RespondBadRequest(w, handlers.CodeInvalidTime, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrUnprocessable):
			h.logger.Warn("POST /bookings - Unprocessable input: %v", err)
			handlers.RespondUnprocessable(w, err.Error())

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%s, date=%s, time=%s",
		result.ID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
