package update_field

import (
	"context"

	"github.com/sanbongvn/SBV-CatalogService/internal/service/fields/models"
)

// FieldsService интерфейс сервиса каталога полей
type FieldsService interface {
	Update(ctx context.Context, id int64, req *models.UpdateFieldRequest) (*models.FieldResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
