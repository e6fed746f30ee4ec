package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name              string
		number, size, tot int
		want              Page
	}{
		{"defaults", 0, 0, 45, Page{Number: 1, Size: DefaultPageSize, TotalRows: 45, TotalPages: 3}},
		{"clamped size", 2, 500, 250, Page{Number: 2, Size: MaxPageSize, TotalRows: 250, TotalPages: 3}},
		{"exact fit", 1, 10, 30, Page{Number: 1, Size: 10, TotalRows: 30, TotalPages: 3}},
		{"empty", 1, 10, 0, Page{Number: 1, Size: 10, TotalRows: 0, TotalPages: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPage(tt.number, tt.size, tt.tot))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got, p := Paginate(items, 2, 2)
	assert.Equal(t, []int{3, 4}, got)
	assert.Equal(t, 3, p.TotalPages)

	got, _ = Paginate(items, 3, 2)
	assert.Equal(t, []int{5}, got)

	got, _ = Paginate(items, 9, 2)
	assert.Empty(t, got)

	got, p = Paginate(items, math.MaxInt/50, MaxPageSize)
	assert.Empty(t, got)
	assert.Equal(t, 1, p.TotalPages)

	got, _ = Paginate(items, math.MaxInt, 2)
	assert.Empty(t, got)

	got, _ = Paginate([]int{}, 1, 10)
	assert.Empty(t, got)
}

func TestPageBoundsPastEnd(t *testing.T) {
	lo, hi := NewPage(math.MaxInt, MaxPageSize, 7).Bounds()
	assert.Equal(t, 7, lo)
	assert.Equal(t, 7, hi)
}
