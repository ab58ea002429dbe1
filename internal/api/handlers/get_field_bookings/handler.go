package get_field_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/sanbongvn/SBV-CatalogService/internal/api/handlers"
	"github.com/sanbongvn/SBV-CatalogService/internal/domain"
	bookingsService "github.com/sanbongvn/SBV-CatalogService/internal/service/bookings"
	"github.com/sanbongvn/SBV-CatalogService/internal/service/bookings/models"
)

const (
	msgInvalidFieldID = "некорректный ID поля"
	msgInvalidDate    = "некорректный формат даты"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/bookings
// Query params: date (YYYY-MM-DD, опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fieldID, err := strconv.ParseInt(mux.Vars(r)["fieldId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /fields/{id}/bookings - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	req := &models.GetFieldBookingsRequest{FieldID: fieldID}
	if dateRaw := r.URL.Query().Get("date"); dateRaw != "" {
		date, err := time.Parse(domain.DateFormat, dateRaw)
		if err != nil {
			h.logger.Warn("GET /fields/{id}/bookings - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	result, err := h.service.GetFieldBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /fields/{id}/bookings - Invalid input: field_id=%d", fieldID)
			handlers.RespondBadRequest(w, msgInvalidFieldID)
		default:
			h.logger.Error("GET /fields/{id}/bookings - Failed to get bookings: field_id=%d, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fields/{id}/bookings - Bookings retrieved: field_id=%d, count=%d", fieldID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
