package domain

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// PageWindow is one page of a filtered, sorted sequence. Start and End are
// 1-indexed display bounds; both are 0 for an empty page.
type PageWindow[T any] struct {
	Items []T
	Total int
	Start int
	End   int
}

// Paginate returns the slice [(page-1)*size, page*size) of items together
// with the total count and display bounds. Pages past the end yield an empty
// window.
func Paginate[T any](items []T, p PaginationParams) PageWindow[T] {
	w := PageWindow[T]{Items: []T{}, Total: len(items)}
	if p.PageSize <= 0 {
		return w
	}
	start := p.Offset()
	if start >= len(items) {
		return w
	}
	end := start + p.PageSize
	if end > len(items) {
		end = len(items)
	}
	w.Items = items[start:end]
	w.Start = start + 1
	w.End = end
	return w
}
