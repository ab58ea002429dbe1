package get_field

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sanbongvn/SBV-CatalogService/internal/api/handlers"
	fieldsService "github.com/sanbongvn/SBV-CatalogService/internal/service/fields"
)

const (
	msgInvalidFieldID = "некорректный ID поля"
	msgFieldNotFound  = "поле не найдено"
)

type Handler struct {
	service FieldsService
	logger  Logger
}

func NewHandler(service FieldsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fieldID, err := strconv.ParseInt(mux.Vars(r)["fieldId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /fields/{id} - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	result, err := h.service.GetByID(r.Context(), fieldID)
	if err != nil {
		switch {
		case errors.Is(err, fieldsService.ErrFieldNotFound):
			h.logger.Warn("GET /fields/{id} - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)
		default:
			h.logger.Error("GET /fields/{id} - Failed to get field: field_id=%d, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
