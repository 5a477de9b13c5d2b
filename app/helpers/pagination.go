package helpers

import "strconv"

// PageSize is the fixed page size used by every listing endpoint.
const PageSize = 10

// ParsePage turns a raw page parameter into a 1-based page number.
// Non-numeric, missing or non-positive values clamp to page 1 instead of
// erroring.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Offset converts a 1-based page number into a row offset.
func Offset(page int) int {
	return (page - 1) * PageSize
}

// TotalPages reports how many pages a listing of total rows spans, at
// least 1 so an empty listing still renders page 1.
func TotalPages(total int) int {
	pages := (total + PageSize - 1) / PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ListPage fetches the requested page. A page past the end of the
// listing silently serves page 1 instead of an empty page; the returned
// page is the one actually served.
func ListPage[T any](page int, fetch func(limit, offset int) ([]T, int, error)) ([]T, int, int, error) {
	items, total, err := fetch(PageSize, Offset(page))
	if err == nil && page > 1 && len(items) == 0 {
		page = 1
		if total > 0 {
			items, total, err = fetch(PageSize, 0)
		}
	}
	return items, total, page, err
}
