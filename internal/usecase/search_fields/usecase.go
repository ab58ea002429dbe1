package search_fields

import (
	"context"
	"fmt"

	"github.com/sanbongvn/SBV-CatalogService/internal/domain"
)

// UseCase use case поиска по каталогу полей: фильтры, фасеты, сортировка,
// пагинация. Порядок стадий фиксирован - фасеты считаются по
// отфильтрованному, но еще не пагинированному набору.
type UseCase struct {
	catalog      CatalogRepository
	availability AvailabilityChecker
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog CatalogRepository, availability AvailabilityChecker, logger Logger) *UseCase {
	return &UseCase{
		catalog:      catalog,
		availability: availability,
		logger:       logger,
	}
}

// Execute выполняет поиск
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchFields: search=%q, sport=%q, location=%q, sort=%s/%s, page=%d, size=%d",
		req.Search, req.SportType, req.Location, req.SortBy, req.SortDir, req.Page, req.PageSize)

	// 1. Стартуем со всего каталога
	items, err := uc.catalog.GetAll(ctx)
	if err != nil {
		uc.logger.Error("SearchFields: failed to get catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get catalog: %v", ErrInternal, err)
	}

	// 2-5. Текстовый поиск, категория, локация, границы цены
	filtered := items[:0:0]
	for i := range items {
		j := &items[i]

		if req.Search != "" && !matchesSearch(j, req.Search) {
			continue
		}
		if req.SportType != "" && j.SportType != req.SportType {
			continue
		}
		if req.Location != "" && !matchesLocation(j, req.Location) {
			continue
		}
		if req.PriceMin != nil && j.PricePerHour < *req.PriceMin {
			continue
		}
		if req.PriceMax != nil && j.PricePerHour > *req.PriceMax {
			continue
		}

		filtered = append(filtered, *j)
	}

	// 6. Фильтр доступности - только при полном корректном окне
	if req.Date != nil && req.StartTime != nil && req.EndTime != nil && req.StartTime.IsBefore(*req.EndTime) {
		available := filtered[:0]
		for i := range filtered {
			ok, err := uc.availability.IsAvailable(ctx, filtered[i].ID, *req.Date, *req.StartTime, *req.EndTime)
			if err != nil {
				uc.logger.Error("SearchFields: availability check failed for field=%d: %v", filtered[i].ID, err)
				return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
			}
			if ok {
				available = append(available, filtered[i])
			}
		}
		filtered = available
	}

	// Фасеты считаются до сортировки и пагинации
	facets := computeFacets(filtered)
	total := len(filtered)

	// 7. Стабильная сортировка
	sortItems(filtered, req.SortBy, req.SortDir)

	// 8. Пагинация: некорректные значения нормализуются, поиск не падает
	page := req.Page
	if page <= 0 {
		page = domain.DefaultPage
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	uc.logger.Info("SearchFields: %d matches, returning page %d (%d items)", total, page, end-start)

	return &Response{
		Items:  filtered[start:end],
		Total:  total,
		Facets: facets,
	}, nil
}
