package check_availability

import (
	"context"
	"time"

	"github.com/sanbongvn/SBV-CatalogService/pkg/types"
)

// AvailabilityService интерфейс сервиса проверки доступности
type AvailabilityService interface {
	IsAvailable(ctx context.Context, fieldID int64, date time.Time, start, end types.TimeString) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
