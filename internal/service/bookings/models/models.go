package models

import (
	"time"

	"github.com/sanbongvn/SBV-CatalogService/internal/domain"
)

// BookingResponse представление бронирования для вызывающей стороны
type BookingResponse struct {
	ID            int64   `json:"id"`
	FieldID       int64   `json:"fieldId"`
	CustomerID    int64   `json:"customerId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours float64 `json:"durationHours"`
	Price         float64 `json:"price"`
	PaymentStatus string  `json:"paymentStatus"`
}

// BookingListResponse список бронирований поля
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// GetFieldBookingsRequest запрос на получение бронирований поля
type GetFieldBookingsRequest struct {
	FieldID int64
	Date    *time.Time // nil = все даты
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		FieldID:       b.FieldID,
		CustomerID:    b.CustomerID,
		Date:          b.Date.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		DurationHours: b.DurationHours,
		Price:         b.Price,
		PaymentStatus: string(b.PaymentStatus),
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}
	for i := range bookings {
		resp.Bookings = append(resp.Bookings, FromDomainBooking(&bookings[i]))
	}
	return resp
}
