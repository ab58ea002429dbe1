package search_fields

import (
	"time"

	"github.com/sanbongvn/SBV-CatalogService/internal/domain"
	"github.com/sanbongvn/SBV-CatalogService/pkg/types"
)

// Request параметры поиска по каталогу.
// Все фильтры опциональны; фильтр доступности применяется только когда
// заданы дата и корректное окно (start < end).
type Request struct {
	// Search подстрока без учета регистра: имя поля, имя магазина ИЛИ адрес
	Search string

	// SportType точное совпадение категории
	SportType string

	// Location подстрока нормализованной локации
	// (последние два сегмента адреса через запятую)
	Location string

	// Границы цены, включительно, каждая независимо опциональна
	PriceMin *float64
	PriceMax *float64

	// Фильтр доступности
	Date      *time.Time
	StartTime *types.TimeString
	EndTime   *types.TimeString

	// SortBy один из domain.SortBy*; пустое значение сохраняет порядок
	// после фильтрации
	SortBy  string
	SortDir string

	// Пагинация, 1-based; некорректные значения нормализуются к дефолтам
	Page     int
	PageSize int
}

// Facets наборы значений для UI фильтров, вычисленные по отфильтрованному
// (но еще не пагинированному) набору
type Facets struct {
	SportTypes []string
	Locations  []string
}

// Response результат поиска
type Response struct {
	// Items страница результатов
	Items []domain.JoinedField

	// Total количество результатов ДО пагинации
	Total int

	Facets Facets
}
