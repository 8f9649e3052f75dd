// Package mindbooks parses the curated Mind-Expanding-Books README into
// typed records.
package mindbooks

// Book is one curated book row out of the README tables.
type Book struct {
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	GoodreadsRating float64 `json:"goodreadsRating"`
	GoodreadsURL    string  `json:"goodreadsUrl"`
	YearPublished   int     `json:"yearPublished"`
	Category        string  `json:"category"`
	CategorySlug    string  `json:"categorySlug"`
}

// Category groups the books listed under one level-2 README heading.
type Category struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Books []Book `json:"books"`
}
