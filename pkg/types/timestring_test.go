package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, raw := range []string{"", "9:3", "24:00", "10:60", "abc", "10:00:00"} {
		_, err := NewTimeStringFromString(raw)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", raw)
	}
}

func TestTimeStringMinutes(t *testing.T) {
	ts := TimeString("10:30")
	m, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeStringComparisons(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("10:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.False(t, a.IsBefore(a))

	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("10:00")

	got, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	// Переход через полночь
	got, err = TimeString("23:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:15"), got)

	got, err = TimeString("01:00").AddMinutes(-120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:00"), got)

	_, err = TimeString("bad").AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeStringAddHours(t *testing.T) {
	got, err := TimeString("10:00").AddHours(1.5)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	// Результат заворачивается по модулю суток без признака смены дня
	got, err = TimeString("23:00").AddHours(3)
	require.NoError(t, err)
	assert.Equal(t, TimeString("02:00"), got)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd TimeString
		want                       bool
	}{
		{"partial overlap", "10:00", "11:00", "10:30", "11:30", true},
		{"contained", "10:00", "12:00", "10:30", "11:00", true},
		{"identical", "10:00", "11:00", "10:00", "11:00", true},
		{"touching end-to-start", "09:00", "10:00", "10:00", "11:00", false},
		{"touching start-to-end", "10:00", "11:00", "09:00", "10:00", false},
		{"disjoint", "08:00", "09:00", "10:00", "11:00", false},
		// Строгие неравенства применяются буквально и к вырожденным окнам:
		// старт внутри чужого окна даёт пересечение, отсечение таких окон -
		// забота вызывающей стороны
		{"zero-length window inside", "10:00", "10:00", "09:00", "11:00", true},
		{"zero-length window at boundary", "11:00", "11:00", "09:00", "11:00", false},
		{"inverted window inside", "11:00", "10:00", "09:00", "12:00", true},
		{"inverted window outside", "13:00", "12:00", "09:00", "11:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("21:15")))
	assert.Equal(t, TimeString("21:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
