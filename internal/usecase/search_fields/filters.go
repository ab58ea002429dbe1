package search_fields

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/sanbongvn/SBV-CatalogService/internal/domain"
)

// matchesSearch проверяет подстроку без учета регистра по имени поля,
// имени магазина ИЛИ адресу (логическое ИЛИ, достаточно одного совпадения)
func matchesSearch(j *domain.JoinedField, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(j.Name), needle) ||
		strings.Contains(strings.ToLower(j.Shop.Name), needle) ||
		strings.Contains(strings.ToLower(j.Address), needle)
}

// normalizeLocation сводит адрес к последним двум сегментам, разделенным
// запятыми: "12 Le Loi, Hai Chau, Da Nang" -> "Hai Chau,Da Nang".
// Сегменты обрезаются и склеиваются запятой без пробела.
func normalizeLocation(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) > 2 {
		parts = parts[len(parts)-2:]
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, ",")
}

// matchesLocation проверяет вхождение запрошенной строки в нормализованную
// локацию поля
func matchesLocation(j *domain.JoinedField, location string) bool {
	return strings.Contains(
		strings.ToLower(normalizeLocation(j.Address)),
		strings.ToLower(location),
	)
}

// sortItems стабильно сортирует результаты по запрошенному ключу.
// Неизвестный или пустой ключ сохраняет порядок после фильтрации.
// Имена сравниваются с учетом вьетнамской коллации.
func sortItems(items []domain.JoinedField, sortBy, sortDir string) {
	dir := 1
	if sortDir == domain.SortDesc {
		dir = -1
	}

	var cmp func(a, b *domain.JoinedField) int
	switch sortBy {
	case domain.SortByPrice:
		cmp = func(a, b *domain.JoinedField) int {
			return compareFloat(a.PricePerHour, b.PricePerHour)
		}
	case domain.SortByRating:
		cmp = func(a, b *domain.JoinedField) int {
			return compareFloat(a.AverageRating, b.AverageRating)
		}
	case domain.SortByName:
		// collate.Collator не потокобезопасен, создаем на каждый вызов
		coll := collate.New(language.Vietnamese)
		cmp = func(a, b *domain.JoinedField) int {
			return coll.CompareString(a.Name, b.Name)
		}
	default:
		return
	}

	sort.SliceStable(items, func(i, k int) bool {
		return dir*cmp(&items[i], &items[k]) < 0
	})
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// computeFacets собирает уникальные категории и нормализованные локации
// отфильтрованного набора, отсортированные по возрастанию
func computeFacets(items []domain.JoinedField) Facets {
	sportSet := make(map[string]struct{})
	locationSet := make(map[string]struct{})

	for i := range items {
		sportSet[items[i].SportType] = struct{}{}
		locationSet[normalizeLocation(items[i].Address)] = struct{}{}
	}

	facets := Facets{
		SportTypes: make([]string, 0, len(sportSet)),
		Locations:  make([]string, 0, len(locationSet)),
	}
	for s := range sportSet {
		facets.SportTypes = append(facets.SportTypes, s)
	}
	for l := range locationSet {
		facets.Locations = append(facets.Locations, l)
	}
	sort.Strings(facets.SportTypes)
	sort.Strings(facets.Locations)

	return facets
}
