package view

// DefaultPageSize is the table page size when none is requested.
const DefaultPageSize = 25

// Page is one window of a sequence.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	TotalPages int  `json:"totalPages"`
	TotalCount int  `json:"totalCount"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// TotalPages is ceil(count/pageSize), never less than 1.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return max(1, (count+pageSize-1)/pageSize)
}

// ClampPage moves page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	return min(max(page, 1), max(totalPages, 1))
}

// Paginate slices seq into the requested page after clamping it to a valid one.
func Paginate[T any](seq []T, pageSize, page int) Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	totalPages := TotalPages(len(seq), pageSize)
	page = ClampPage(page, totalPages)

	start := min((page-1)*pageSize, len(seq))
	end := min(start+pageSize, len(seq))

	items := make([]T, end-start)
	copy(items, seq[start:end])

	return Page[T]{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalCount: len(seq),
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// PageWindow returns the page numbers of at most maxVisible pagination buttons
// centered on page.
func PageWindow(page, totalPages, maxVisible int) []int {
	if maxVisible < 1 || totalPages < 1 {
		return []int{}
	}
	page = ClampPage(page, totalPages)
	start := max(1, page-maxVisible/2)
	end := min(totalPages, start+maxVisible-1)
	if end-start+1 < maxVisible {
		start = max(1, end-maxVisible+1)
	}

	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
