package health

import (
	"net/http"

	"github.com/th-alves/nails-booking-service/internal/api/handlers"
)

type response struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type Handler struct {
	serviceName string
}

func NewHandler(serviceName string) *Handler {
	return &Handler{serviceName: serviceName}
}

// Handle GET /api/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, response{
		Status:  "healthy",
		Service: h.serviceName,
	})
}
