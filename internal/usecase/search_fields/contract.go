package search_fields

import (
	"context"
	"time"

	"github.com/sanbongvn/SBV-CatalogService/internal/domain"
	"github.com/sanbongvn/SBV-CatalogService/pkg/types"
)

// CatalogRepository интерфейс каталога полей
type CatalogRepository interface {
	GetAll(ctx context.Context) ([]domain.JoinedField, error)
}

// AvailabilityChecker интерфейс проверки доступности поля
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, fieldID int64, date time.Time, start, end types.TimeString) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
