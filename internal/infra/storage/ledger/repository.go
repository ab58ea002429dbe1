package ledger

import (
	"context"
	"time"

	"github.com/sanbongvn/SBV-CatalogService/internal/domain"
)

// Repository in-memory индекс бронирований по полю.
//
// Журнал бронирований принадлежит внешней системе: снимок загружается один
// раз при старте и после этого не меняется, поэтому чтения безопасны без
// блокировок.
type Repository struct {
	byField map[int64][]domain.Booking
}

// NewRepository индексирует снимок журнала. Для записей без EndTime время
// окончания выводится из start + duration (с переносом через полночь,
// см. types.TimeString.AddHours).
func NewRepository(bookings []domain.Booking) *Repository {
	r := &Repository{byField: make(map[int64][]domain.Booking)}

	for _, b := range bookings {
		if b.EndTime.IsZero() && !b.StartTime.IsZero() {
			if end, err := b.StartTime.AddHours(b.DurationHours); err == nil {
				b.EndTime = end
			}
		}
		r.byField[b.FieldID] = append(r.byField[b.FieldID], b)
	}

	return r
}

// GetByFieldID возвращает бронирования поля, опционально отфильтрованные по
// дате (сравнение по календарному дню). Порядок - порядок появления записей
// в источнике, сортировка по времени не гарантируется. Результат - копия,
// вызывающая сторона может его менять.
func (r *Repository) GetByFieldID(_ context.Context, fieldID int64, date *time.Time) ([]domain.Booking, error) {
	bookings := r.byField[fieldID]

	result := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if date != nil && !b.SameDay(*date) {
			continue
		}
		result = append(result, b)
	}

	return result, nil
}
