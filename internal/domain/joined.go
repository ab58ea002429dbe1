package domain

// JoinedField is the denormalized view of a field: the field itself merged
// with its images, owning shop, reviews and the derived average rating.
// This is the only entity the query and availability paths operate on; it is
// rebuilt (or patched in place) after every mutation so it always reflects
// the latest Field and Shop state.
type JoinedField struct {
	Field

	Shop          Shop
	Images        []FieldImage
	Reviews       []Review
	AverageRating float64
}
