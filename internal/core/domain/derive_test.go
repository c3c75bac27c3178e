package domain_test

import (
	"testing"
	"time"

	"listing-view-service/internal/core/domain"
)

func day(n int) time.Time {
	return time.Date(2025, time.March, n, 12, 0, 0, 0, time.UTC)
}

func sampleListings() []domain.Listing {
	return []domain.Listing{
		{ID: 1, Title: "T1 centre", Price: 450, PublishedAt: day(3), Location: "Lyon", IsFurnished: true},
		{ID: 2, Title: "T2 gare", Price: 700, PublishedAt: day(1), Location: "Paris", HasBalcony: true},
		{ID: 3, Title: "Studio", Price: 450, PublishedAt: day(5), Location: "Bordeaux", IsShared: true},
		{ID: 4, Title: "T3 calme", Price: 900, PublishedAt: day(2), Location: "Lyon", HasGarage: true, IsFurnished: true},
	}
}

func ids(listings []domain.Listing) []int64 {
	out := make([]int64, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}

func assertIDs(t *testing.T, got []domain.Listing, want []int64) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got ids %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got ids %v, want %v", gotIDs, want)
		}
	}
}

// ── SortListings ───────────────────────────────────────────────────────────

func TestSortListings_NoneAndUnknownKeepOrder(t *testing.T) {
	for _, key := range []domain.SortKey{domain.SortNone, "", "bogus-key"} {
		got := domain.SortListings(sampleListings(), key)
		assertIDs(t, got, []int64{1, 2, 3, 4})
	}
}

func TestSortListings_RecencyDesc(t *testing.T) {
	got := domain.SortListings(sampleListings(), domain.SortRecencyDesc)
	assertIDs(t, got, []int64{3, 1, 4, 2})
}

func TestSortListings_RecencyAsc(t *testing.T) {
	got := domain.SortListings(sampleListings(), domain.SortRecencyAsc)
	assertIDs(t, got, []int64{2, 4, 1, 3})
}

func TestSortListings_PriceAscIsStable(t *testing.T) {
	// Элементы 1 и 3 имеют одинаковую цену: исходный порядок сохраняется.
	got := domain.SortListings(sampleListings(), domain.SortPriceAsc)
	assertIDs(t, got, []int64{1, 3, 2, 4})
}

func TestSortListings_PriceDesc(t *testing.T) {
	got := domain.SortListings(sampleListings(), domain.SortPriceDesc)
	assertIDs(t, got, []int64{4, 2, 1, 3})
}

func TestSortListings_LocationAsc(t *testing.T) {
	got := domain.SortListings(sampleListings(), domain.SortLocationAsc)
	// Bordeaux < Lyon < Paris; внутри Lyon порядок стабильный (1 перед 4).
	assertIDs(t, got, []int64{3, 1, 4, 2})
}

func TestSortListings_LocationDesc(t *testing.T) {
	got := domain.SortListings(sampleListings(), domain.SortLocationDesc)
	assertIDs(t, got, []int64{2, 1, 4, 3})
}

func TestSortListings_DoesNotMutateInput(t *testing.T) {
	in := sampleListings()
	_ = domain.SortListings(in, domain.SortPriceDesc)
	assertIDs(t, in, []int64{1, 2, 3, 4})
}

func TestSortListings_EmptyInput(t *testing.T) {
	got := domain.SortListings(nil, domain.SortPriceAsc)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d items", len(got))
	}
}

// ── FilterByPrice ──────────────────────────────────────────────────────────

func TestFilterByPrice_InclusiveBounds(t *testing.T) {
	got := domain.FilterByPrice(sampleListings(), &domain.PriceRange{Min: 450, Max: 700})
	assertIDs(t, got, []int64{1, 2, 3})
	for _, l := range got {
		if l.Price < 450 || l.Price > 700 {
			t.Errorf("listing %d has price %v outside [450, 700]", l.ID, l.Price)
		}
	}
}

func TestFilterByPrice_NilRangeIsIdentity(t *testing.T) {
	got := domain.FilterByPrice(sampleListings(), nil)
	assertIDs(t, got, []int64{1, 2, 3, 4})
}

func TestFilterByPrice_ExcludesOutOfRange(t *testing.T) {
	got := domain.FilterByPrice(sampleListings(), &domain.PriceRange{Min: 1000, Max: 2000})
	if len(got) != 0 {
		t.Fatalf("expected no listings, got %v", ids(got))
	}
}

// ── FilterByLocation ───────────────────────────────────────────────────────

func TestFilterByLocation_EmptySetIsIdentity(t *testing.T) {
	// Пустой набор локаций - "без ограничения", а не "исключить все".
	got := domain.FilterByLocation(sampleListings(), nil)
	assertIDs(t, got, []int64{1, 2, 3, 4})

	got = domain.FilterByLocation(sampleListings(), []string{})
	assertIDs(t, got, []int64{1, 2, 3, 4})
}

func TestFilterByLocation_Subset(t *testing.T) {
	got := domain.FilterByLocation(sampleListings(), []string{"Lyon", "Bordeaux"})
	assertIDs(t, got, []int64{1, 3, 4})
}

func TestFilterByLocation_UnknownLabel(t *testing.T) {
	got := domain.FilterByLocation(sampleListings(), []string{"Nantes"})
	if len(got) != 0 {
		t.Fatalf("expected no listings, got %v", ids(got))
	}
}

// ── TriState / FilterByAmenities ───────────────────────────────────────────

func TestTriStateMatches(t *testing.T) {
	cases := []struct {
		selector domain.TriState
		flag     bool
		want     bool
	}{
		{"", true, true},
		{"", false, true},
		{domain.TriStateYes, true, true},
		{domain.TriStateYes, false, false},
		{"NON", true, false},
		{"NON", false, true},
		{"anything-else", false, true},
	}
	for _, c := range cases {
		if got := c.selector.Matches(c.flag); got != c.want {
			t.Errorf("TriState(%q).Matches(%v) = %v, want %v", c.selector, c.flag, got, c.want)
		}
	}
}

func TestFilterByAmenities_AllUnsetPassesEverything(t *testing.T) {
	got := domain.FilterByAmenities(sampleListings(), domain.AmenityFilters{})
	assertIDs(t, got, []int64{1, 2, 3, 4})
}

func TestFilterByAmenities_RequireTrueExcludesFalse(t *testing.T) {
	got := domain.FilterByAmenities(sampleListings(), domain.AmenityFilters{Furnished: domain.TriStateYes})
	assertIDs(t, got, []int64{1, 4})
}

func TestFilterByAmenities_RequireFalse(t *testing.T) {
	got := domain.FilterByAmenities(sampleListings(), domain.AmenityFilters{Shared: "NON"})
	assertIDs(t, got, []int64{1, 2, 4})
}

func TestFilterByAmenities_AndSemantics(t *testing.T) {
	// Все четыре селектора должны пройти одновременно.
	got := domain.FilterByAmenities(sampleListings(), domain.AmenityFilters{
		Furnished: domain.TriStateYes,
		Garage:    domain.TriStateYes,
	})
	assertIDs(t, got, []int64{4})
}

// ── Derive ─────────────────────────────────────────────────────────────────

func TestDerive_StagesApplyInOrder(t *testing.T) {
	criteria := domain.Criteria{
		Sort:      domain.SortPriceAsc,
		Price:     &domain.PriceRange{Min: 400, Max: 800},
		Locations: []string{"Lyon", "Paris"},
		Amenities: domain.AmenityFilters{Furnished: domain.TriStateYes},
	}
	got := domain.Derive(sampleListings(), criteria)
	assertIDs(t, got, []int64{1})
}

func TestDerive_EmptyInput(t *testing.T) {
	got := domain.Derive(nil, domain.Criteria{Sort: domain.SortPriceAsc})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d items", len(got))
	}
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	in := sampleListings()
	_ = domain.Derive(in, domain.Criteria{
		Sort:  domain.SortRecencyDesc,
		Price: &domain.PriceRange{Min: 0, Max: 500},
	})
	assertIDs(t, in, []int64{1, 2, 3, 4})
}
