package catalog

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/aanand-mishra/motoportal-api/internal/types"
)

func ids(ls []types.Listing) []int64 {
	out := make([]int64, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.ID)
	}
	return out
}

func TestFilterListingsAndAcrossGroups(t *testing.T) {
	listings := []types.Listing{
		{ID: 1, Name: "Honda Shop", Category: "Mc"},
		{ID: 2, Name: "Yamaha", Category: "Moto"},
	}

	got := FilterListings(listings, ListingCriteria{Search: "Honda", Category: "Mc"})
	assert.Equal(t, []int64{1}, ids(got))

	got = FilterListings(listings, ListingCriteria{Search: "Honda", Category: "Moto"})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestFilterListingsTagsAreOrWithinGroup(t *testing.T) {
	listings := []types.Listing{
		{ID: 1, Name: "A", Tags: []string{"oil"}},
		{ID: 2, Name: "B", Tags: []string{"tires"}},
		{ID: 3, Name: "C"},
	}

	got := FilterListings(listings, ListingCriteria{Tags: []string{"oil", "tires"}})
	assert.Equal(t, []int64{1, 2}, ids(got))

	got = FilterListings(listings, ListingCriteria{Tags: []string{"brakes"}})
	assert.Empty(t, got)

	got = FilterListings(listings, ListingCriteria{Tags: []string{}})
	assert.Equal(t, []int64{1, 2, 3}, ids(got), "empty tag set is a bypass")

	got = FilterListings(listings, ListingCriteria{Tags: []string{" OIL "}})
	assert.Equal(t, []int64{1}, ids(got), "tags compare case-insensitively")
}

func TestFilterListingsTagsCoverServicesAndCourses(t *testing.T) {
	listings := []types.Listing{
		{ID: 1, Kind: types.KindService, Services: []string{"Шиномонтаж"}},
		{ID: 2, Kind: types.KindSchool, Courses: []string{"Категория A"}},
		{ID: 3, Kind: types.KindShop, Features: []string{"Доставка"}},
	}

	got := FilterListings(listings, ListingCriteria{Tags: []string{"шиномонтаж", "категория a"}})
	assert.Equal(t, []int64{1, 2}, ids(got))
}

func TestFilterListingsCategoryBypass(t *testing.T) {
	listings := []types.Listing{
		{ID: 1, Category: "Мотосервис"},
		{ID: 2, Category: "Тюнинг"},
		{ID: 3},
	}

	for _, all := range []string{AllCategory, ""} {
		got := FilterListings(listings, ListingCriteria{Category: all})
		assert.Equal(t, []int64{1, 2, 3}, ids(got), "category %q", all)
	}

	got := FilterListings(listings, ListingCriteria{Category: "Тюнинг"})
	assert.Equal(t, []int64{2}, ids(got))
}

func TestFilterListingsSearch(t *testing.T) {
	listings := []types.Listing{
		{ID: 1, Name: "МотоТех Сервис", Description: "ремонт двигателя"},
		{ID: 2, Name: "Байк Центр", Description: "Тюнинг и ДИАГНОСТИКА", Tags: []string{"custom"}},
		{ID: 3, Name: "Garage", Tags: []string{"Мотомойка"}},
	}

	tests := []struct {
		name     string
		criteria ListingCriteria
		want     []int64
	}{
		{"name is case-insensitive", ListingCriteria{Search: "мототех"}, []int64{1}},
		{"description matches", ListingCriteria{Search: "диагностика"}, []int64{2}},
		{"tags ignored by default", ListingCriteria{Search: "мойка"}, []int64{}},
		{"tags when asked", ListingCriteria{Search: "мойка", SearchTags: true}, []int64{3}},
		{"blank search is a bypass", ListingCriteria{Search: "  "}, []int64{1, 2, 3}},
		{"no match", ListingCriteria{Search: "yamaha"}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterListings(listings, tt.criteria)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("FilterListings() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterListingsKindLocationRating(t *testing.T) {
	listings := []types.Listing{
		{ID: 1, Kind: types.KindShop, Location: "Тюмень", Rating: 4.9},
		{ID: 2, Kind: types.KindShop, Location: "Курган", Rating: 4.2},
		{ID: 3, Kind: types.KindSchool, Location: "Тюмень", Rating: 5},
	}

	assert.Equal(t, []int64{1, 2}, ids(FilterListings(listings, ListingCriteria{Kind: types.KindShop})))
	assert.Equal(t, []int64{1, 3}, ids(FilterListings(listings, ListingCriteria{Location: "Тюмень"})))
	assert.Equal(t, []int64{1, 3}, ids(FilterListings(listings, ListingCriteria{MinRating: 4.5})))
	assert.Equal(t, []int64{1}, ids(FilterListings(listings, ListingCriteria{
		Kind: types.KindShop, Location: "Тюмень", MinRating: 4.5,
	})))
}

func TestFilterListingsHandlesNil(t *testing.T) {
	assert.Empty(t, FilterListings(nil, ListingCriteria{Search: "x"}))
	got := FilterListings([]types.Listing{{ID: 1}}, ListingCriteria{Tags: []string{"oil"}})
	assert.Empty(t, got)
}

func TestSortListings(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	listings := []types.Listing{
		{ID: 1, Name: "яблоко", Rating: 4.5, CreatedAt: base},
		{ID: 2, Name: "Авто", Rating: 5, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 3, Name: "бензин", Rating: 4.5, CreatedAt: base.Add(time.Hour)},
	}

	assert.Equal(t, []int64{2, 1, 3}, ids(SortListings(listings, SortRating)), "ties keep input order")
	assert.Equal(t, []int64{2, 3, 1}, ids(SortListings(listings, SortName)))
	assert.Equal(t, []int64{2, 3, 1}, ids(SortListings(listings, SortNewest)))
	assert.Equal(t, []int64{1, 2, 3}, ids(SortListings(listings, SortNone)))
	assert.Equal(t, []int64{1, 2, 3}, ids(SortListings(listings, "popularity")))

	assert.Equal(t, []int64{1, 2, 3}, ids(listings), "input is not modified")
}

func TestFacets(t *testing.T) {
	listings := []types.Listing{
		{Category: "Тюнинг", Location: "Тюмень"},
		{Category: "Мойка", Location: ""},
		{Category: "Тюнинг", Location: "Курган"},
		{Category: AllCategory},
	}

	f := Facets(listings)
	assert.Equal(t, []string{AllCategory, "Тюнинг", "Мойка"}, f.Categories)
	assert.Equal(t, []string{"Тюмень", "Курган"}, f.Locations)

	empty := Facets(nil)
	assert.Equal(t, []string{AllCategory}, empty.Categories)
	assert.NotNil(t, empty.Locations)
}
