package availability

import (
	"context"
	"time"

	"github.com/sanbongvn/SBV-CatalogService/internal/domain"
)

// LedgerRepository интерфейс индекса бронирований
type LedgerRepository interface {
	GetByFieldID(ctx context.Context, fieldID int64, date *time.Time) ([]domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
