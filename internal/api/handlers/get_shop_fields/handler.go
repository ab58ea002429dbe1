package get_shop_fields

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sanbongvn/SBV-CatalogService/internal/api/handlers"
	fieldsService "github.com/sanbongvn/SBV-CatalogService/internal/service/fields"
)

const (
	msgInvalidShopID = "некорректный ID магазина"
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

// Handle GET /api/v1/shops/{shopId}/fields
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(mux.Vars(r)["shopId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /shops/{id}/fields - Invalid shop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	result, err := h.service.GetByShop(r.Context(), shopID)
	if err != nil {
		switch {
		case errors.Is(err, fieldsService.ErrInvalidInput):
			h.logger.Warn("GET /shops/{id}/fields - Invalid input: shop_id=%d", shopID)
			handlers.RespondBadRequest(w, msgInvalidShopID)
		default:
			h.logger.Error("GET /shops/{id}/fields - Failed to get fields: shop_id=%d, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shops/{id}/fields - Fields retrieved: shop_id=%d, count=%d", shopID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
