package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/sanbongvn/SBV-CatalogService/internal/domain"
	"github.com/sanbongvn/SBV-CatalogService/pkg/types"
)

// Service проверяет доступность поля на запрошенное временное окно.
//
// Проверка point-in-time: между проверкой и фиксацией бронирования внешним
// журналом возможна гонка check-then-act, повторная атомарная проверка при
// коммите - ответственность владельца журнала.
type Service struct {
	ledger LedgerRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(ledger LedgerRepository, logger Logger) *Service {
	return &Service{
		ledger: ledger,
		logger: logger,
	}
}

// IsAvailable reports whether the field is free for the half-open window
// [start, end) on the given calendar day.
//
// A degenerate window (start >= end) is never available and short-circuits
// to false without touching the ledger. Otherwise the window is free iff no
// same-day booking overlaps it: strict inequalities, so a booking ending at
// exactly the probe's start (or starting at its end) does not conflict.
func (s *Service) IsAvailable(ctx context.Context, fieldID int64, date time.Time, start, end types.TimeString) (bool, error) {
	if fieldID <= 0 {
		return false, fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}
	if err := start.Validate(); err != nil {
		return false, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	if err := end.Validate(); err != nil {
		return false, fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}

	// Вырожденное окно никогда не "свободно"
	if !start.IsBefore(end) {
		s.logger.Warn("IsAvailable: degenerate window [%s, %s) for field=%d", start, end, fieldID)
		return false, nil
	}

	bookings, err := s.ledger.GetByFieldID(ctx, fieldID, &date)
	if err != nil {
		s.logger.Error("IsAvailable: failed to get bookings for field=%d: %v", fieldID, err)
		return false, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	for _, b := range bookings {
		if types.Overlaps(start, end, b.StartTime, b.EndTime) {
			s.logger.Info("IsAvailable: field=%d busy on %s, window [%s, %s) overlaps booking id=%d [%s, %s)",
				fieldID, date.Format(domain.DateFormat), start, end, b.ID, b.StartTime, b.EndTime)
			return false, nil
		}
	}

	return true, nil
}
