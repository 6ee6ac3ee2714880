package list_barbershops

import (
	"net/http"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbershops
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /barbershops - Failed to list barbershops: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /barbershops - Barbershops retrieved successfully: count=%d", len(result.Barbershops))
	handlers.RespondJSON(w, http.StatusOK, result)
}
