package domain

// Review represents a customer review of a field.
// Reviews are read-only inputs; only the derived average rating changes the
// behaviour of the catalog (sorting, responses).
type Review struct {
	ID         int64
	FieldID    int64
	CustomerID int64
	Rating     int // 1..5
	Comment    string
}

// AverageRating returns the arithmetic mean of the ratings, 0 when the list
// is empty.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
