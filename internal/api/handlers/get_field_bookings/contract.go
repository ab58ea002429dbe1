package get_field_bookings

import (
	"context"

	"github.com/sanbongvn/SBV-CatalogService/internal/service/bookings/models"
)

// BookingsService интерфейс сервиса журнала бронирований
type BookingsService interface {
	GetFieldBookings(ctx context.Context, req *models.GetFieldBookingsRequest) (*models.BookingListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
