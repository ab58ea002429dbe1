package get_shop_fields

import (
	"context"

	"github.com/sanbongvn/SBV-CatalogService/internal/service/fields/models"
)

// FieldsService интерфейс сервиса каталога полей
type FieldsService interface {
	GetByShop(ctx context.Context, shopID int64) (*models.FieldListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
