package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/th-alves/nails-booking-service/internal/api/handlers"
	"github.com/th-alves/nails-booking-service/internal/domain"
	getAvailableSlots "github.com/th-alves/nails-booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingDate = "o parâmetro date é obrigatório"
	msgInvalidDate = "formato de data inválido, use YYYY-MM-DD"
	msgWeekend     = "não atendemos nos finais de semana"
	msgPastDate    = "não é possível agendar em datas passadas"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/available-slots?date=YYYY-MM-DD
// Responds with a bare JSON array of "HH:MM" strings, ascending.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidDate, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrWeekend):
			h.logger.Warn("GET /available-slots - Weekend rejected: date=%s", dateStr)
			handlers.RespondBadRequest(w, handlers.CodeWeekend, msgWeekend)

		case errors.Is(err, getAvailableSlots.ErrPastDate):
			h.logger.Warn("GET /available-slots - Past date rejected: date=%s", dateStr)
			handlers.RespondBadRequest(w, handlers.CodePastDate, msgPastDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, err.Error())

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	slots := make([]string, len(result.Slots))
	for i, slot := range result.Slots {
		slots[i] = slot.String()
	}

	h.logger.Info("GET /available-slots - %d slots for date=%s", len(slots), dateStr)
	handlers.RespondJSON(w, http.StatusOK, slots)
}
