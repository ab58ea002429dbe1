package get_field

import (
	"context"

	"github.com/sanbongvn/SBV-CatalogService/internal/service/fields/models"
)

// FieldsService интерфейс сервиса каталога полей
type FieldsService interface {
	GetByID(ctx context.Context, id int64) (*models.FieldResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
