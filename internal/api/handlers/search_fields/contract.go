package search_fields

import (
	"context"

	searchFields "github.com/sanbongvn/SBV-CatalogService/internal/usecase/search_fields"
)

// SearchFieldsUseCase интерфейс use case поиска
type SearchFieldsUseCase interface {
	Execute(ctx context.Context, req *searchFields.Request) (*searchFields.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
