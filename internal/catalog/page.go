package catalog

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page describes one window of a result list. Number is 1-based.
type Page struct {
	Number     int
	Size       int
	TotalRows  int
	TotalPages int
}

// NewPage clamps number and size and computes the page count for total rows.
// A number past the last page yields an empty window, not an error.
func NewPage(number, size, total int) Page {
	if number <= 0 {
		number = 1
	}
	switch {
	case size > MaxPageSize:
		size = MaxPageSize
	case size <= 0:
		size = DefaultPageSize
	}

	pages := 0
	if total > 0 {
		pages = (total + size - 1) / size
	}

	return Page{Number: number, Size: size, TotalRows: total, TotalPages: pages}
}

// Bounds returns the half-open index window of the page into the full list.
// Pages past the last one are empty windows at the end of the list.
func (p Page) Bounds() (lo, hi int) {
	// Compared before multiplying: a huge Number would overflow.
	if p.Number > p.TotalPages {
		return p.TotalRows, p.TotalRows
	}
	lo = (p.Number - 1) * p.Size
	hi = lo + p.Size
	if hi > p.TotalRows {
		hi = p.TotalRows
	}
	return lo, hi
}

// Paginate cuts the requested page out of items.
func Paginate[T any](items []T, number, size int) ([]T, Page) {
	p := NewPage(number, size, len(items))
	lo, hi := p.Bounds()
	return items[lo:hi], p
}
