package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanbongvn/SBV-CatalogService/internal/domain"
	"github.com/sanbongvn/SBV-CatalogService/pkg/types"
)

type stubLedger struct {
	bookings []domain.Booking
	err      error
}

func (s *stubLedger) GetByFieldID(_ context.Context, fieldID int64, date *time.Time) ([]domain.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	var result []domain.Booking
	for _, b := range s.bookings {
		if b.FieldID != fieldID {
			continue
		}
		if date != nil && !b.SameDay(*date) {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

func testDay() time.Time {
	return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
}

func newTestService(bookings []domain.Booking) *Service {
	return NewService(&stubLedger{bookings: bookings}, stubLogger{})
}

func TestIsAvailableOverlap(t *testing.T) {
	svc := newTestService([]domain.Booking{
		{ID: 1, FieldID: 10, Date: testDay(), StartTime: "10:00", EndTime: "11:00"},
	})

	tests := []struct {
		name       string
		start, end types.TimeString
		want       bool
	}{
		{"overlapping window", "10:30", "11:30", false},
		{"window fully inside booking", "10:15", "10:45", false},
		{"booking fully inside window", "09:00", "12:00", false},
		{"touching booking end", "11:00", "12:00", true},
		{"touching booking start", "09:00", "10:00", true},
		{"disjoint before", "08:00", "09:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.IsAvailable(context.Background(), 10, testDay(), tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsAvailableOtherDay(t *testing.T) {
	svc := newTestService([]domain.Booking{
		{ID: 1, FieldID: 10, Date: testDay(), StartTime: "10:00", EndTime: "11:00"},
	})

	otherDay := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	got, err := svc.IsAvailable(context.Background(), 10, otherDay, "10:00", "11:00")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestIsAvailableNoBookings(t *testing.T) {
	svc := newTestService(nil)

	got, err := svc.IsAvailable(context.Background(), 10, testDay(), "10:00", "11:00")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestIsAvailableDegenerateWindow(t *testing.T) {
	svc := newTestService(nil)

	// start == end
	got, err := svc.IsAvailable(context.Background(), 10, testDay(), "10:00", "10:00")
	require.NoError(t, err)
	assert.False(t, got)

	// start > end
	got, err = svc.IsAvailable(context.Background(), 10, testDay(), "11:00", "10:00")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestIsAvailableInvalidInput(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.IsAvailable(context.Background(), 0, testDay(), "10:00", "11:00")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.IsAvailable(context.Background(), 10, testDay(), "bad", "11:00")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.IsAvailable(context.Background(), 10, testDay(), "10:00", "25:00")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestIsAvailableLedgerError(t *testing.T) {
	svc := NewService(&stubLedger{err: errors.New("boom")}, stubLogger{})

	_, err := svc.IsAvailable(context.Background(), 10, testDay(), "10:00", "11:00")
	assert.ErrorIs(t, err, ErrInternal)
}
