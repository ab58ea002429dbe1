package check_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sanbongvn/SBV-CatalogService/internal/api/handlers"
	"github.com/sanbongvn/SBV-CatalogService/internal/domain"
	availabilityService "github.com/sanbongvn/SBV-CatalogService/internal/service/availability"
)

const (
	msgInvalidParams = "некорректные параметры проверки доступности"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/availability
// Query params: date (YYYY-MM-DD), startTime, endTime (HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseCheckRequest(mux.Vars(r)["fieldId"], r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /fields/{id}/availability - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	available, err := h.service.IsAvailable(r.Context(), req.FieldID, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("GET /fields/{id}/availability - Invalid input: field_id=%d", req.FieldID)
			handlers.RespondBadRequest(w, msgInvalidParams)
		default:
			h.logger.Error("GET /fields/{id}/availability - Check failed: field_id=%d, error=%v", req.FieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fields/{id}/availability - Checked: field_id=%d, date=%s, available=%t",
		req.FieldID, req.Date.Format(domain.DateFormat), available)

	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{
		FieldID:   req.FieldID,
		Date:      req.Date.Format(domain.DateFormat),
		StartTime: req.StartTime.String(),
		EndTime:   req.EndTime.String(),
		Available: available,
	})
}
