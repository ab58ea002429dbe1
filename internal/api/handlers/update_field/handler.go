package update_field

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sanbongvn/SBV-CatalogService/internal/api/handlers"
	"github.com/sanbongvn/SBV-CatalogService/internal/api/middleware"
	fieldsService "github.com/sanbongvn/SBV-CatalogService/internal/service/fields"
	"github.com/sanbongvn/SBV-CatalogService/internal/service/fields/models"
)

const (
	msgInvalidFieldID = "некорректный ID поля"
	msgInvalidBody    = "некорректное тело запроса"
	msgFieldNotFound  = "поле не найдено"
	msgInvalidStatus  = "некорректный статус поля"
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

// Handle PATCH /api/v1/fields/{fieldId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fieldID, err := strconv.ParseInt(mux.Vars(r)["fieldId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /fields/{id} - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	var req models.UpdateFieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /fields/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	result, err := h.service.Update(r.Context(), fieldID, &req)
	if err != nil {
		switch {
		case errors.Is(err, fieldsService.ErrFieldNotFound):
			h.logger.Warn("PATCH /fields/{id} - Field not found: field_id=%d, user_id=%d", fieldID, userID)
			handlers.RespondNotFound(w, msgFieldNotFound)
		case errors.Is(err, fieldsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /fields/{id} - Invalid status: field_id=%d, user_id=%d", fieldID, userID)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			h.logger.Error("PATCH /fields/{id} - Failed to update field: field_id=%d, user_id=%d, error=%v",
				fieldID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /fields/{id} - Field updated: field_id=%d, user_id=%d", fieldID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
