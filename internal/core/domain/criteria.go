package domain

// SortKey - ключ сортировки списка объявлений.
type SortKey string

const (
	SortRecencyDesc  SortKey = "recency-desc"
	SortRecencyAsc   SortKey = "recency-asc"
	SortPriceAsc     SortKey = "price-asc"
	SortPriceDesc    SortKey = "price-desc"
	SortLocationAsc  SortKey = "location-asc"
	SortLocationDesc SortKey = "location-desc"
	SortNone         SortKey = "none"
)

// TriState - трехзначный селектор фильтра по флагу удобства.
// Пустая строка - селектор не применяется, TriStateYes - требуется true,
// любое другое непустое значение - требуется false.
type TriState string

const TriStateYes TriState = "OUI"

// Matches сообщает, проходит ли значение флага через селектор.
func (t TriState) Matches(flag bool) bool {
	switch t {
	case "":
		return true
	case TriStateYes:
		return flag
	default:
		return !flag
	}
}

// PriceRange - диапазон цены, включительно с обеих сторон.
type PriceRange struct {
	Min float64
	Max float64
}

// AmenityFilters - четыре независимых селектора по флагам удобств.
// Объявление проходит фильтр, только если проходит каждый селектор.
type AmenityFilters struct {
	Shared    TriState
	Garage    TriState
	Furnished TriState
	Balcony   TriState
}

// Criteria - полный набор критериев построения списка.
// Nil Price и пустой Locations означают отсутствие ограничения.
type Criteria struct {
	Sort      SortKey
	Price     *PriceRange
	Locations []string
	Amenities AmenityFilters
}
