package domain

import (
	"time"

	"github.com/sanbongvn/SBV-CatalogService/pkg/types"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "paid"
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentRefund PaymentStatus = "refunded"
)

// Booking represents a committed time-window claim against one field.
// The booking ledger is owned by an external system: this service reads it
// once at startup and never writes to it. [StartTime, EndTime) is a
// half-open window; bookings on one field and date are assumed to be
// non-overlapping by the ledger's own contract.
type Booking struct {
	ID         int64
	FieldID    int64
	CustomerID int64

	// Date is a calendar day; no timezone conversion is applied anywhere.
	Date          time.Time
	StartTime     types.TimeString
	DurationHours float64

	// EndTime is derived from StartTime + DurationHours at load time and
	// wraps past midnight (a 23:00 + 3h booking ends at "02:00").
	EndTime types.TimeString

	Price         float64
	PaymentStatus PaymentStatus
}

// SameDay returns true if the booking is on the given calendar day.
func (b *Booking) SameDay(date time.Time) bool {
	y1, m1, d1 := b.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
