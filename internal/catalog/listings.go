// Package catalog filters and sorts in-memory collections for the list
// endpoints. Nothing here touches storage or the clock; filters are total
// over their input and never reorder it, sorts return a sorted copy.
package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/aanand-mishra/motoportal-api/internal/types"
)

// AllCategory is the category value that disables category filtering.
const AllCategory = "Все"

// Sort keys understood by SortListings.
const (
	SortNone   = ""
	SortRating = "rating"
	SortName   = "name"
	SortNewest = "newest"
)

// ListingCriteria selects listings. Zero-valued fields do not restrict.
type ListingCriteria struct {
	Kind types.Kind

	// Search is matched case-insensitively against name and description,
	// and against every label too when SearchTags is set.
	Search     string
	SearchTags bool

	Category string

	// Tags passes a listing carrying at least one of them.
	Tags []string

	Location  string
	MinRating float64
}

// FilterListings returns the listings matching every criteria group, in
// their original order. The result is never nil.
func FilterListings(listings []types.Listing, c ListingCriteria) []types.Listing {
	search := fold(strings.TrimSpace(c.Search))
	wanted := foldSet(c.Tags)

	out := make([]types.Listing, 0, len(listings))
	for _, l := range listings {
		if c.Kind != "" && l.Kind != c.Kind {
			continue
		}
		if !matchesSearch(l, search, c.SearchTags) {
			continue
		}
		if !matchesCategory(l.Category, c.Category) {
			continue
		}
		if len(wanted) > 0 && !anyIn(l.Labels(), wanted) {
			continue
		}
		if c.Location != "" && l.Location != c.Location {
			continue
		}
		if l.Rating < c.MinRating {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matchesSearch(l types.Listing, search string, withTags bool) bool {
	if search == "" {
		return true
	}
	if strings.Contains(fold(l.Name), search) || strings.Contains(fold(l.Description), search) {
		return true
	}
	if withTags {
		for _, tag := range l.Labels() {
			if strings.Contains(fold(tag), search) {
				return true
			}
		}
	}
	return false
}

func matchesCategory(have, want string) bool {
	return want == "" || want == AllCategory || have == want
}

// SortListings returns a copy of listings ordered by key. Unknown keys and
// SortNone keep the input order. Ties keep their input order.
func SortListings(listings []types.Listing, key string) []types.Listing {
	out := slices.Clone(listings)

	switch key {
	case SortRating:
		slices.SortStableFunc(out, func(a, b types.Listing) int {
			return compareDesc(a.Rating, b.Rating)
		})
	case SortName:
		col := collate.New(language.Russian, collate.IgnoreCase)
		slices.SortStableFunc(out, func(a, b types.Listing) int {
			return col.CompareString(a.Name, b.Name)
		})
	case SortNewest:
		slices.SortStableFunc(out, func(a, b types.Listing) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}

	return out
}

// ListingFacets lists the values a client can offer as filter choices.
type ListingFacets struct {
	Categories []string `json:"categories"`
	Locations  []string `json:"locations"`
}

// Facets collects distinct non-empty categories and locations in first-seen
// order. Categories always start with AllCategory.
func Facets(listings []types.Listing) ListingFacets {
	f := ListingFacets{
		Categories: []string{AllCategory},
		Locations:  []string{},
	}
	seenCat := map[string]struct{}{AllCategory: {}}
	seenLoc := map[string]struct{}{}

	for _, l := range listings {
		if _, ok := seenCat[l.Category]; !ok && l.Category != "" {
			seenCat[l.Category] = struct{}{}
			f.Categories = append(f.Categories, l.Category)
		}
		if _, ok := seenLoc[l.Location]; !ok && l.Location != "" {
			seenLoc[l.Location] = struct{}{}
			f.Locations = append(f.Locations, l.Location)
		}
	}
	return f
}

func fold(s string) string {
	return cases.Fold().String(s)
}

func foldSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		set[fold(v)] = struct{}{}
	}
	return set
}

func anyIn(values []string, set map[string]struct{}) bool {
	for _, v := range values {
		if _, ok := set[fold(strings.TrimSpace(v))]; ok {
			return true
		}
	}
	return false
}

func compareDesc[T int | int64 | float64](a, b T) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}
