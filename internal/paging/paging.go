// Package paging slices in-memory result lists into page windows.
package paging

// Page is one window of a larger list.
type Page[T any] struct {
	Items       []T `json:"items"`
	Total       int `json:"total"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
}

// Paginate slices items into the requested page window. Out-of-range page
// numbers are clamped into [1, TotalPages] instead of failing; an empty
// list yields zero pages with CurrentPage pinned to 1.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage < 1 {
		perPage = 1
	}

	total := len(items)
	totalPages := (total + perPage - 1) / perPage

	current := page
	if current > totalPages {
		current = totalPages
	}
	if current < 1 {
		current = 1
	}

	start := (current - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return Page[T]{
		Items:       items[start:end],
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: current,
	}
}
