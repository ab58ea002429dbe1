package models

import (
	"time"

	"github.com/sanbongvn/SBV-CatalogService/internal/domain"
	"github.com/sanbongvn/SBV-CatalogService/pkg/types"
)

// Request модели

// CreateFieldRequest запрос на создание поля.
// Цена принимается через types.FlexNumber: число, числовая строка или
// мусор - всё, что не парсится, становится нулём (толерантный ввод)
type CreateFieldRequest struct {
	Name         string           `json:"name"`
	SportType    string           `json:"sportType"`
	PricePerHour types.FlexNumber `json:"pricePerHour"`
	Address      string           `json:"address"`
	Status       *string          `json:"status,omitempty"`
}

// ToDomainInput конвертирует запрос в domain.CreateFieldInput
func (r *CreateFieldRequest) ToDomainInput() domain.CreateFieldInput {
	input := domain.CreateFieldInput{
		Name:         r.Name,
		SportType:    r.SportType,
		PricePerHour: r.PricePerHour.Float64(),
		Address:      r.Address,
	}
	if r.Status != nil {
		input.Status = domain.FieldStatus(*r.Status)
	}
	return input
}

// UpdateFieldRequest частичное обновление поля: отсутствующие поля не меняются
type UpdateFieldRequest struct {
	Name         *string           `json:"name,omitempty"`
	SportType    *string           `json:"sportType,omitempty"`
	PricePerHour *types.FlexNumber `json:"pricePerHour,omitempty"`
	Address      *string           `json:"address,omitempty"`
	Status       *string           `json:"status,omitempty"`
}

// ToDomainInput конвертирует запрос в domain.UpdateFieldInput
func (r *UpdateFieldRequest) ToDomainInput() domain.UpdateFieldInput {
	patch := domain.UpdateFieldInput{
		Name:      r.Name,
		SportType: r.SportType,
		Address:   r.Address,
	}
	if r.PricePerHour != nil {
		price := r.PricePerHour.Float64()
		patch.PricePerHour = &price
	}
	if r.Status != nil {
		status := domain.FieldStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

// Response модели

// ShopResponse представление магазина-владельца
type ShopResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ImageResponse представление картинки поля
type ImageResponse struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// ReviewResponse представление отзыва
type ReviewResponse struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customerId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// FieldResponse денормализованное представление поля
type FieldResponse struct {
	ID            int64            `json:"id"`
	ShopID        int64            `json:"shopId"`
	Name          string           `json:"name"`
	SportType     string           `json:"sportType"`
	PricePerHour  float64          `json:"pricePerHour"`
	Address       string           `json:"address"`
	Status        string           `json:"status"`
	AverageRating float64          `json:"averageRating"`
	Shop          ShopResponse     `json:"shop"`
	Images        []ImageResponse  `json:"images"`
	Reviews       []ReviewResponse `json:"reviews"`
	CreatedAt     string           `json:"createdAt"`
	UpdatedAt     string           `json:"updatedAt"`
}

// FieldListResponse список полей
type FieldListResponse struct {
	Fields []FieldResponse `json:"fields"`
	Total  int             `json:"total"`
}

// FromDomainJoinedField конвертирует domain.JoinedField в FieldResponse
func FromDomainJoinedField(j *domain.JoinedField) *FieldResponse {
	images := make([]ImageResponse, 0, len(j.Images))
	for _, img := range j.Images {
		images = append(images, ImageResponse{ID: img.ID, URL: img.URL})
	}

	reviews := make([]ReviewResponse, 0, len(j.Reviews))
	for _, rv := range j.Reviews {
		reviews = append(reviews, ReviewResponse{
			ID:         rv.ID,
			CustomerID: rv.CustomerID,
			Rating:     rv.Rating,
			Comment:    rv.Comment,
		})
	}

	return &FieldResponse{
		ID:            j.ID,
		ShopID:        j.ShopID,
		Name:          j.Name,
		SportType:     j.SportType,
		PricePerHour:  j.PricePerHour,
		Address:       j.Address,
		Status:        string(j.Status),
		AverageRating: j.AverageRating,
		Shop: ShopResponse{
			ID:      j.Shop.ID,
			Name:    j.Shop.Name,
			Address: j.Shop.Address,
		},
		Images:    images,
		Reviews:   reviews,
		CreatedAt: j.CreatedAt.Format(time.RFC3339),
		UpdatedAt: j.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainJoinedFieldList конвертирует список представлений
func FromDomainJoinedFieldList(list []domain.JoinedField) *FieldListResponse {
	resp := &FieldListResponse{
		Fields: make([]FieldResponse, 0, len(list)),
		Total:  len(list),
	}
	for i := range list {
		resp.Fields = append(resp.Fields, *FromDomainJoinedField(&list[i]))
	}
	return resp
}
