package domain

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Конвейер вывода: сортировка -> фильтр по цене -> фильтр по локации ->
// фильтр по удобствам. Каждый этап - чистая функция; входной срез
// никогда не изменяется, потому что исходный массив каталога разделяется
// с другими потребителями.

// SortListings возвращает отсортированную копию списка.
// Сортировка стабильная; равные элементы сохраняют исходный порядок.
// Неизвестный ключ (в том числе SortNone) оставляет порядок как есть.
func SortListings(in []Listing, key SortKey) []Listing {
	out := make([]Listing, len(in))
	copy(out, in)

	switch key {
	case SortRecencyDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PublishedAt.After(out[j].PublishedAt) })
	case SortRecencyAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PublishedAt.Before(out[j].PublishedAt) })
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortLocationAsc:
		c := newLocationCollator()
		sort.SliceStable(out, func(i, j int) bool { return c.CompareString(out[i].Location, out[j].Location) < 0 })
	case SortLocationDesc:
		c := newLocationCollator()
		sort.SliceStable(out, func(i, j int) bool { return c.CompareString(out[i].Location, out[j].Location) > 0 })
	}

	return out
}

// newLocationCollator создает компаратор названий локаций.
// Метки приходят на французском, сравниваем без учета регистра.
func newLocationCollator() *collate.Collator {
	return collate.New(language.French, collate.IgnoreCase)
}

// FilterByPrice оставляет объявления с ценой в диапазоне r
// (обе границы включительно). Nil диапазон - тождественный этап.
func FilterByPrice(in []Listing, r *PriceRange) []Listing {
	if r == nil {
		return in
	}
	out := make([]Listing, 0, len(in))
	for _, l := range in {
		if l.Price >= r.Min && l.Price <= r.Max {
			out = append(out, l)
		}
	}
	return out
}

// FilterByLocation оставляет объявления из заданного набора локаций.
// Пустой набор означает "без ограничения", а не "исключить все" -
// это намеренная асимметрия с селекторами удобств.
func FilterByLocation(in []Listing, locations []string) []Listing {
	if len(locations) == 0 {
		return in
	}

	allowed := make(map[string]struct{}, len(locations))
	for _, loc := range locations {
		allowed[loc] = struct{}{}
	}

	out := make([]Listing, 0, len(in))
	for _, l := range in {
		if _, ok := allowed[l.Location]; ok {
			out = append(out, l)
		}
	}
	return out
}

// FilterByAmenities применяет четыре селектора как логическое И.
func FilterByAmenities(in []Listing, f AmenityFilters) []Listing {
	out := make([]Listing, 0, len(in))
	for _, l := range in {
		if f.Shared.Matches(l.IsShared) &&
			f.Garage.Matches(l.HasGarage) &&
			f.Furnished.Matches(l.IsFurnished) &&
			f.Balcony.Matches(l.HasBalcony) {
			out = append(out, l)
		}
	}
	return out
}

// Derive строит итоговый список по критериям. Порядок этапов фиксирован.
func Derive(in []Listing, c Criteria) []Listing {
	result := SortListings(in, c.Sort)
	result = FilterByPrice(result, c.Price)
	result = FilterByLocation(result, c.Locations)
	result = FilterByAmenities(result, c.Amenities)
	return result
}
