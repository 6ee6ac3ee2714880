package get_barbershop

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/catalog"
)

const (
	msgInvalidBarbershopID = "некорректный ID барбершопа"
	msgBarbershopNotFound  = "барбершоп не найден"
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

// Handle GET /api/v1/barbershops/{barbershopId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем barbershopId из URL
	barbershopIDStr := vars["barbershopId"]
	barbershopID, err := strconv.ParseInt(barbershopIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /barbershops/{id} - Invalid barbershop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	result, err := h.service.GetByID(r.Context(), barbershopID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrBarbershopNotFound):
			h.logger.Warn("GET /barbershops/{id} - Barbershop not found: barbershop_id=%d", barbershopID)
			handlers.RespondNotFound(w, msgBarbershopNotFound)

		default:
			h.logger.Error("GET /barbershops/{id} - Failed to get barbershop: barbershop_id=%d, error=%v",
				barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbershops/{id} - Barbershop retrieved successfully: barbershop_id=%d", barbershopID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
