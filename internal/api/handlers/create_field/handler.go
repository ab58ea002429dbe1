package create_field

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
	msgInvalidShopID  = "некорректный ID магазина"
	msgInvalidBody    = "некорректное тело запроса"
	msgShopNotFound   = "магазин не найден"
	msgInvalidStatus  = "некорректный статус поля"
	msgInvalidRequest = "некорректные данные поля"
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

// Handle POST /api/v1/shops/{shopId}/fields
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(mux.Vars(r)["shopId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /shops/{id}/fields - Invalid shop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	var req models.CreateFieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shops/{id}/fields - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	result, err := h.service.Create(r.Context(), shopID, &req)
	if err != nil {
		switch {
		case errors.Is(err, fieldsService.ErrShopNotFound):
			h.logger.Warn("POST /shops/{id}/fields - Shop not found: shop_id=%d, user_id=%d", shopID, userID)
			handlers.RespondNotFound(w, msgShopNotFound)
		case errors.Is(err, fieldsService.ErrInvalidStatus):
			h.logger.Warn("POST /shops/{id}/fields - Invalid status: shop_id=%d, user_id=%d", shopID, userID)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		case errors.Is(err, fieldsService.ErrInvalidInput):
			h.logger.Warn("POST /shops/{id}/fields - Invalid input: shop_id=%d, user_id=%d", shopID, userID)
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("POST /shops/{id}/fields - Failed to create field: shop_id=%d, user_id=%d, error=%v",
				shopID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shops/{id}/fields - Field created: field_id=%d, shop_id=%d, user_id=%d",
		result.ID, shopID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
