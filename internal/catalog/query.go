package catalog

import "strings"

// Options narrows a book list; zero-value fields are no-ops.
type Options struct {
	Search   string
	Category string
	Language string
}

// Search keeps books whose title or author contains query,
// case-insensitively. A query that trims to empty returns the input as is.
func Search(books []Book, query string) []Book {
	if strings.TrimSpace(query) == "" {
		return books
	}
	q := strings.ToLower(query)
	var out []Book
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), q) ||
			(b.Author != "" && strings.Contains(strings.ToLower(b.Author), q)) {
			out = append(out, b)
		}
	}
	return out
}

// FilterByCategory keeps books whose category equals the given name,
// ignoring case. Empty filter returns the input as is.
func FilterByCategory(books []Book, category string) []Book {
	if category == "" {
		return books
	}
	var out []Book
	for _, b := range books {
		if strings.EqualFold(b.Category, category) {
			out = append(out, b)
		}
	}
	return out
}

// FilterByLanguage keeps books with an exact language code match; codes are
// already normalized upstream. Empty filter returns the input as is.
func FilterByLanguage(books []Book, code string) []Book {
	if code == "" {
		return books
	}
	var out []Book
	for _, b := range books {
		if b.LanguageCode == code {
			out = append(out, b)
		}
	}
	return out
}

// Filter applies search, then category, then language.
func Filter(books []Book, opts Options) []Book {
	books = Search(books, opts.Search)
	books = FilterByCategory(books, opts.Category)
	books = FilterByLanguage(books, opts.Language)
	return books
}
