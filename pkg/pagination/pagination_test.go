package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_Clamps(t *testing.T) {
	p := PaginationParams{Page: -3, PerPage: 10_000}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxPerPage, p.PerPage)

	p = PaginationParams{}
	p.Validate()
	assert.Equal(t, DefaultPerPage, p.PerPage)
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page, meta := Slice(items, PaginationParams{Page: 2, PerPage: 3})
	assert.Equal(t, []int{4, 5, 6}, page)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	page, meta = Slice(items, PaginationParams{Page: 3, PerPage: 3})
	assert.Equal(t, []int{7}, page)
	assert.False(t, meta.HasNext)

	page, meta = Slice(items, PaginationParams{Page: 9, PerPage: 3})
	assert.NotNil(t, page)
	assert.Empty(t, page)
	assert.Equal(t, int64(7), meta.Total)
}

func TestSlice_EmptyListing(t *testing.T) {
	page, meta := Slice([]string{}, PaginationParams{})
	assert.Empty(t, page)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}
