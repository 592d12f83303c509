package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate_ClampsPastLastPage(t *testing.T) {
	seq := []string{"a", "b", "c"}

	p := Paginate(seq, 1, 5)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, []string{"c"}, p.Items)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestPaginate_ClampsBelowFirstPage(t *testing.T) {
	p := Paginate([]int{1, 2, 3}, 2, -4)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, []int{1, 2}, p.Items)
}

func TestPaginate_EmptySequence(t *testing.T) {
	p := Paginate([]int{}, 10, 3)

	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 1, p.Page)
	assert.Empty(t, p.Items)
	assert.NotNil(t, p.Items)
}

func TestPaginate_PageNeverOutsideBounds(t *testing.T) {
	seq := make([]int, 23)
	for size := 1; size <= 25; size++ {
		for page := -2; page <= 30; page++ {
			p := Paginate(seq, size, page)
			assert.GreaterOrEqual(t, p.Page, 1)
			assert.LessOrEqual(t, p.Page, p.TotalPages)
		}
	}
}

func TestPaginate_InvalidPageSizeFallsBack(t *testing.T) {
	p := Paginate(make([]int, 30), 0, 2)

	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Len(t, p.Items, 5)
}

func TestPageWindow(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, PageWindow(1, 10, 5))
	assert.Equal(t, []int{4, 5, 6, 7, 8}, PageWindow(6, 10, 5))
	assert.Equal(t, []int{6, 7, 8, 9, 10}, PageWindow(10, 10, 5))
	assert.Equal(t, []int{1, 2}, PageWindow(2, 2, 5))
}
