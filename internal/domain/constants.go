package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Pagination defaults
// Некорректные значения страницы/размера нормализуются к этим значениям,
// поиск никогда не падает из-за пагинации
const (
	DefaultPage     = 1
	DefaultPageSize = 12
)

// Sort keys supported by the search pipeline
const (
	SortByPrice  = "price"
	SortByRating = "rating"
	SortByName   = "name"
)

// Sort directions
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)
