package domain

import "time"

// FieldStatus represents the operational status of a field
type FieldStatus string

const (
	StatusAvailable   FieldStatus = "available"
	StatusMaintenance FieldStatus = "maintenance"
	StatusClosed      FieldStatus = "closed"
)

// Valid returns true if the status is one of the known values
func (s FieldStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusClosed:
		return true
	default:
		return false
	}
}

// Field represents a bookable sports field in the catalog
type Field struct {
	ID           int64
	ShopID       int64
	Name         string
	SportType    string
	PricePerHour float64
	Address      string
	Status       FieldStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FieldImage represents one image attached to a field
type FieldImage struct {
	ID      int64
	FieldID int64
	URL     string
}

// CreateFieldInput данные для создания нового поля
// Идентификатор назначается каталогом, не вызывающей стороной
type CreateFieldInput struct {
	Name         string
	SportType    string
	PricePerHour float64
	Address      string
	Status       FieldStatus // пустой статус = StatusAvailable
}

// UpdateFieldInput частичное обновление поля
// nil-поля не изменяются
type UpdateFieldInput struct {
	Name         *string
	SportType    *string
	PricePerHour *float64
	Address      *string
	Status       *FieldStatus
}
