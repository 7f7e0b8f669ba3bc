package dashboard_stats

import (
	"net/http"

	"github.com/th-alves/nails-booking-service/internal/api/handlers"
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

// Handle GET /api/dashboard/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard/stats - Failed to collect stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceStats(stats))
}
