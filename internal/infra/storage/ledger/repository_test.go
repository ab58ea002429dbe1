package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanbongvn/SBV-CatalogService/internal/domain"
	"github.com/sanbongvn/SBV-CatalogService/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testBookings() []domain.Booking {
	return []domain.Booking{
		{ID: 1, FieldID: 10, CustomerID: 7, Date: date(2026, 9, 1), StartTime: "10:00", EndTime: "11:00", DurationHours: 1, PaymentStatus: domain.PaymentPaid},
		{ID: 2, FieldID: 10, CustomerID: 8, Date: date(2026, 9, 2), StartTime: "09:00", EndTime: "10:30", DurationHours: 1.5, PaymentStatus: domain.PaymentUnpaid},
		{ID: 3, FieldID: 10, CustomerID: 9, Date: date(2026, 9, 1), StartTime: "08:00", EndTime: "09:00", DurationHours: 1, PaymentStatus: domain.PaymentPaid},
		{ID: 4, FieldID: 11, CustomerID: 7, Date: date(2026, 9, 1), StartTime: "18:00", EndTime: "19:00", DurationHours: 1, PaymentStatus: domain.PaymentPaid},
	}
}

func TestGetByFieldIDAllDates(t *testing.T) {
	repo := NewRepository(testBookings())

	got, err := repo.GetByFieldID(context.Background(), 10, nil)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Порядок появления записей в источнике, не по времени
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Equal(t, int64(3), got[2].ID)
}

func TestGetByFieldIDDateFilter(t *testing.T) {
	repo := NewRepository(testBookings())

	day := date(2026, 9, 1)
	got, err := repo.GetByFieldID(context.Background(), 10, &day)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	// Время суток в фильтре не участвует, сравнение по календарному дню
	noon := time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)
	got, err = repo.GetByFieldID(context.Background(), 10, &noon)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetByFieldIDUnknownField(t *testing.T) {
	repo := NewRepository(testBookings())

	got, err := repo.GetByFieldID(context.Background(), 404, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetByFieldIDReturnsCopy(t *testing.T) {
	repo := NewRepository(testBookings())

	got, err := repo.GetByFieldID(context.Background(), 10, nil)
	require.NoError(t, err)
	got[0].StartTime = "00:00"

	fresh, err := repo.GetByFieldID(context.Background(), 10, nil)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), fresh[0].StartTime)
}

func TestNewRepositoryDerivesEndTime(t *testing.T) {
	repo := NewRepository([]domain.Booking{
		{ID: 1, FieldID: 10, Date: date(2026, 9, 1), StartTime: "10:00", DurationHours: 1.5},
		{ID: 2, FieldID: 10, Date: date(2026, 9, 1), StartTime: "23:00", DurationHours: 3},
	})

	got, err := repo.GetByFieldID(context.Background(), 10, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, types.TimeString("11:30"), got[0].EndTime)

	// Перенос через полночь остаётся в рамках тех же суток
	assert.Equal(t, types.TimeString("02:00"), got[1].EndTime)
}
