package bookings

import (
	"context"
	"fmt"

	"github.com/sanbongvn/SBV-CatalogService/internal/domain"
	"github.com/sanbongvn/SBV-CatalogService/internal/service/bookings/models"
)

// Service read-only сервис журнала бронирований
type Service struct {
	ledger LedgerRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(ledger LedgerRepository, logger Logger) *Service {
	return &Service{
		ledger: ledger,
		logger: logger,
	}
}

// GetFieldBookings возвращает бронирования поля, опционально за одну дату.
// Пустой список - штатный результат для поля без бронирований.
func (s *Service) GetFieldBookings(ctx context.Context, req *models.GetFieldBookingsRequest) (*models.BookingListResponse, error) {
	if req.FieldID <= 0 {
		s.logger.Warn("GetFieldBookings: invalid field id=%d", req.FieldID)
		return nil, fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}

	if req.Date != nil {
		s.logger.Info("GetFieldBookings: fetching bookings for field=%d, date=%s",
			req.FieldID, req.Date.Format(domain.DateFormat))
	} else {
		s.logger.Info("GetFieldBookings: fetching bookings for field=%d", req.FieldID)
	}

	list, err := s.ledger.GetByFieldID(ctx, req.FieldID, req.Date)
	if err != nil {
		s.logger.Error("GetFieldBookings: repository error for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: GetFieldBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetFieldBookings: fetched %d bookings for field=%d", len(list), req.FieldID)
	return models.FromDomainBookingList(list), nil
}
