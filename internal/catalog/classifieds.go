package catalog

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/aanand-mishra/motoportal-api/internal/types"
)

const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortPopular   = "popular"
)

// AllTypes disables the classified type filter.
const AllTypes = "all"

// ClassifiedCriteria selects classified ads. Zero-valued fields do not restrict.
type ClassifiedCriteria struct {
	Type      string
	Search    string
	Category  string
	Condition string
	PriceType string
	Location  string

	// PriceRange is "min-max" or "min+". A malformed range is ignored.
	PriceRange string
}

// FilterClassifieds returns the ads matching c in their original order.
// Ads without a stated price pass any price range.
func FilterClassifieds(items []types.Classified, c ClassifiedCriteria) []types.Classified {
	search := fold(strings.TrimSpace(c.Search))
	price, hasPrice := ParsePriceRange(c.PriceRange)

	out := make([]types.Classified, 0, len(items))
	for _, it := range items {
		if c.Type != "" && c.Type != AllTypes && string(it.Type) != c.Type {
			continue
		}
		if search != "" &&
			!strings.Contains(fold(it.Title), search) &&
			!strings.Contains(fold(it.Description), search) {
			continue
		}
		if !matchesCategory(it.Category, c.Category) {
			continue
		}
		if c.Condition != "" && it.Condition != c.Condition {
			continue
		}
		if c.PriceType != "" && it.PriceType != c.PriceType {
			continue
		}
		if c.Location != "" && it.Location != c.Location {
			continue
		}
		if hasPrice && it.Price != 0 && !price.Contains(it.Price) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// SortClassifieds returns a copy of items ordered by key.
func SortClassifieds(items []types.Classified, key string) []types.Classified {
	out := slices.Clone(items)

	switch key {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b types.Classified) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b types.Classified) int {
			return compareDesc(a.Price, b.Price)
		})
	case SortPopular:
		slices.SortStableFunc(out, func(a, b types.Classified) int {
			return compareDesc(a.ViewCount, b.ViewCount)
		})
	case SortNewest:
		slices.SortStableFunc(out, func(a, b types.Classified) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}

	return out
}

// PriceRange is an inclusive price interval. Max is ignored when Open is set.
type PriceRange struct {
	Min  int64
	Max  int64
	Open bool
}

// Contains reports whether price lies in the range.
func (r PriceRange) Contains(price int64) bool {
	if price < r.Min {
		return false
	}
	return r.Open || price <= r.Max
}

// ParsePriceRange parses "100000-300000", "500000+" and "-50000".
// A missing or zero upper bound means no upper bound.
func ParsePriceRange(s string) (PriceRange, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PriceRange{}, false
	}

	if floor, ok := strings.CutSuffix(s, "+"); ok {
		v, err := parseAmount(floor)
		if err != nil {
			return PriceRange{}, false
		}
		return PriceRange{Min: v, Open: true}, true
	}

	lo, hi, found := strings.Cut(s, "-")
	if !found {
		return PriceRange{}, false
	}
	from, err := parseAmount(lo)
	if err != nil {
		return PriceRange{}, false
	}
	to, err := parseAmount(hi)
	if err != nil {
		return PriceRange{}, false
	}

	if to == 0 {
		return PriceRange{Min: from, Open: true}, true
	}
	if to < from {
		return PriceRange{}, false
	}
	return PriceRange{Min: from, Max: to}, true
}

func parseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
