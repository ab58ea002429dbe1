package search_fields

import (
	"net/url"
	"strconv"
	"time"

	"github.com/sanbongvn/SBV-CatalogService/internal/domain"
	searchFields "github.com/sanbongvn/SBV-CatalogService/internal/usecase/search_fields"
	"github.com/sanbongvn/SBV-CatalogService/pkg/types"
)

// FieldSummary элемент выдачи поиска
type FieldSummary struct {
	ID            int64    `json:"id"`
	ShopID        int64    `json:"shopId"`
	ShopName      string   `json:"shopName"`
	Name          string   `json:"name"`
	SportType     string   `json:"sportType"`
	PricePerHour  float64  `json:"pricePerHour"`
	Address       string   `json:"address"`
	Status        string   `json:"status"`
	AverageRating float64  `json:"averageRating"`
	ImageURLs     []string `json:"imageUrls"`
}

// FacetsResponse наборы значений для UI фильтров
type FacetsResponse struct {
	SportTypes []string `json:"sportTypes"`
	Locations  []string `json:"locations"`
}

// SearchFieldsResponse HTTP response model
type SearchFieldsResponse struct {
	Items  []FieldSummary `json:"items"`
	Total  int            `json:"total"`
	Facets FacetsResponse `json:"facets"`
}

// ToUseCaseRequest собирает запрос use case из query параметров.
// Пагинация толерантная: нечисловые page/pageSize остаются нулевыми и
// нормализуются в use case. Цены и времена при ошибке парсинга отклоняются
// вызывающей стороной (см. handler).
func ToUseCaseRequest(query url.Values) (*searchFields.Request, error) {
	req := &searchFields.Request{
		Search:    query.Get("search"),
		SportType: query.Get("sportType"),
		Location:  query.Get("location"),
		SortBy:    query.Get("sortBy"),
		SortDir:   query.Get("sortDir"),
	}

	if v := query.Get("priceMin"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		req.PriceMin = &price
	}
	if v := query.Get("priceMax"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		req.PriceMax = &price
	}

	if v := query.Get("date"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}
	if v := query.Get("startTime"); v != "" {
		start, err := types.NewTimeStringFromString(v)
		if err != nil {
			return nil, err
		}
		req.StartTime = &start
	}
	if v := query.Get("endTime"); v != "" {
		end, err := types.NewTimeStringFromString(v)
		if err != nil {
			return nil, err
		}
		req.EndTime = &end
	}

	// Ошибки парсинга пагинации игнорируем - use case подставит дефолты
	req.Page, _ = strconv.Atoi(query.Get("page"))
	req.PageSize, _ = strconv.Atoi(query.Get("pageSize"))

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchFields.Response) *SearchFieldsResponse {
	items := make([]FieldSummary, 0, len(resp.Items))
	for i := range resp.Items {
		j := &resp.Items[i]

		urls := make([]string, 0, len(j.Images))
		for _, img := range j.Images {
			urls = append(urls, img.URL)
		}

		items = append(items, FieldSummary{
			ID:            j.ID,
			ShopID:        j.ShopID,
			ShopName:      j.Shop.Name,
			Name:          j.Name,
			SportType:     j.SportType,
			PricePerHour:  j.PricePerHour,
			Address:       j.Address,
			Status:        string(j.Status),
			AverageRating: j.AverageRating,
			ImageURLs:     urls,
		})
	}

	return &SearchFieldsResponse{
		Items: items,
		Total: resp.Total,
		Facets: FacetsResponse{
			SportTypes: resp.Facets.SportTypes,
			Locations:  resp.Facets.Locations,
		},
	}
}
