package search_fields

import (
	"net/http"

	"github.com/sanbongvn/SBV-CatalogService/internal/api/handlers"
)

const (
	msgInvalidQueryParams = "некорректные параметры поиска"
)

type Handler struct {
	useCase SearchFieldsUseCase
	logger  Logger
}

func NewHandler(useCase SearchFieldsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields
// Query params: search, sportType, location, priceMin, priceMax,
// date (YYYY-MM-DD), startTime, endTime (HH:MM), sortBy, sortDir,
// page, pageSize
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /fields - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQueryParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("GET /fields - Search failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /fields - Search completed: total=%d, page_items=%d",
		result.Total, len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
