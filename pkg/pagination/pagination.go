package pagination

// Page is one slice of an ordered result set plus the metadata the
// collection envelope needs.
type Page[T any] struct {
	Items      []T
	PageNumber int
	PageSize   int
	TotalCount int
	TotalPages int
}

// Paginate slices items into the requested page. The input order is the
// caller's; no sorting happens here. A page number past the end yields an
// empty slice, never an error.
func Paginate[T any](items []T, pageNumber, pageSize int) Page[T] {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	totalCount := len(items)
	totalPages := (totalCount + pageSize - 1) / pageSize

	start := (pageNumber - 1) * pageSize
	if start > totalCount {
		start = totalCount
	}
	end := start + pageSize
	if end > totalCount {
		end = totalCount
	}

	return Page[T]{
		Items:      items[start:end],
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
