package types

import (
	"database/sql/driver"
	"fmt"
	"math"
	"time"
)

// TimeFormat формат времени HH:MM (минутная гранулярность)
const TimeFormat = "15:04"

const minutesPerDay = 24 * 60

// TimeString represents a wall-clock time of day as an "HH:MM" string.
// It is the only time representation used for booking windows: minute
// granularity, no date, no timezone.
type TimeString string

// NewTimeString creates a TimeString from a time.Time (seconds are dropped).
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	t := TimeString(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate проверяет, что значение соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// IsZero returns true when no value is set.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String implements fmt.Stringer.
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the number of minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	return t.minutes(), nil
}

// minutes возвращает минуты с полуночи, -1 для некорректного значения
func (t TimeString) minutes() int {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return -1
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// IsBefore returns true when t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes() < other.minutes()
}

// IsAfter returns true when t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes() > other.minutes()
}

// AddMinutes returns the time m minutes later, wrapping past midnight.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	total := (t.minutes() + m) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return fromMinutes(total), nil
}

// AddHours returns the time hours later (fractional hours are rounded to
// whole minutes). The result wraps modulo 24h: 23:00 plus 3 hours is 02:00,
// with no indication of the day rollover. Callers that care about the
// calendar day must handle the wrap themselves.
func (t TimeString) AddHours(hours float64) (TimeString, error) {
	return t.AddMinutes(int(math.Round(hours * 60)))
}

// Overlaps reports whether the half-open windows [aStart, aEnd) and
// [bStart, bEnd) intersect, using strict inequalities: touching windows
// (aEnd == bStart) do not overlap. The predicate is applied literally to
// degenerate windows too — a zero-length or inverted window whose start
// lies strictly inside the other window still reports an overlap.
// Rejecting such windows is the caller's job (see availability.IsAvailable).
func Overlaps(aStart, aEnd, bStart, bEnd TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}

func fromMinutes(m int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

// Scan implements sql.Scanner, принимает TIME и текстовые колонки
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeFormat, value)
	}
}

func (t *TimeString) scanString(s string) error {
	// Postgres TIME приходит как "10:00:00" - отбрасываем секунды
	if len(s) > len(TimeFormat) {
		s = s[:len(TimeFormat)]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}
