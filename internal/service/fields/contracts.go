package fields

import (
	"context"

	"github.com/sanbongvn/SBV-CatalogService/internal/domain"
)

// CatalogRepository интерфейс каталога полей
type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.JoinedField, error)
	GetByShop(ctx context.Context, shopID int64) ([]domain.JoinedField, error)
	Create(ctx context.Context, shopID int64, input domain.CreateFieldInput) (*domain.JoinedField, error)
	Update(ctx context.Context, id int64, patch domain.UpdateFieldInput) (*domain.JoinedField, error)
	SetStatus(ctx context.Context, id int64, status domain.FieldStatus) (*domain.JoinedField, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
