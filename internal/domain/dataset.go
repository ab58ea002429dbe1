package domain

// Dataset is the raw record set supplied by the external data source once at
// startup. Shops, images, reviews and bookings are read-only from this
// service's perspective; fields are mutable afterwards but only through the
// catalog.
type Dataset struct {
	Shops    []Shop
	Fields   []Field
	Images   []FieldImage
	Reviews  []Review
	Bookings []Booking
}
