package mindbooks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/crayonzgrim/free-coders-books/internal/platform/source"
)

// FetchFunc retrieves the raw README text.
type FetchFunc func(ctx context.Context) (string, error)

// HTTPFetch fetches the README from url via client.
func HTTPFetch(client *source.Client, url string) FetchFunc {
	return func(ctx context.Context) (string, error) {
		text, err := client.GetText(ctx, url)
		if err != nil {
			return "", fmt.Errorf("fetch mind books: %w", err)
		}
		return text, nil
	}
}

// Service serves the parsed curated list out of a single time-windowed
// cache slot.
type Service struct {
	cache *source.Cache[[]Category]
}

// NewService wires fetch behind a cache with the given window.
func NewService(fetch FetchFunc, ttl time.Duration, metrics *source.Metrics) *Service {
	refresh := func(ctx context.Context) ([]Category, error) {
		markdown, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		return ParseReadme(markdown), nil
	}
	return &Service{cache: source.NewCache("mindbooks", ttl, refresh, metrics)}
}

// AllCategories returns every category in document order.
func (s *Service) AllCategories(ctx context.Context) ([]Category, error) {
	return s.cache.Get(ctx)
}

// AllBooks returns every curated book across categories.
func (s *Service) AllBooks(ctx context.Context) ([]Book, error) {
	categories, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	var books []Book
	for _, cat := range categories {
		books = append(books, cat.Books...)
	}
	return books, nil
}

// BooksByCategory returns the books in the category with the given slug.
func (s *Service) BooksByCategory(ctx context.Context, categorySlug string) ([]Book, error) {
	categories, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	for _, cat := range categories {
		if cat.Slug == categorySlug {
			return cat.Books, nil
		}
	}
	return nil, nil
}

// Search keeps books whose title, author, or category contains query,
// case-insensitively.
func (s *Service) Search(ctx context.Context, query string) ([]Book, error) {
	books, err := s.AllBooks(ctx)
	if err != nil {
		return nil, err
	}
	return searchBooks(books, query), nil
}

// searchBooks keeps books whose title, author, or category contains query.
func searchBooks(books []Book, query string) []Book {
	if strings.TrimSpace(query) == "" {
		return books
	}
	q := strings.ToLower(query)
	var out []Book
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) ||
			strings.Contains(strings.ToLower(b.Category), q) {
			out = append(out, b)
		}
	}
	return out
}

// TopRated returns up to limit books sorted by Goodreads rating, highest
// first. Ties keep document order.
func (s *Service) TopRated(ctx context.Context, limit int) ([]Book, error) {
	books, err := s.AllBooks(ctx)
	if err != nil {
		return nil, err
	}
	sorted := make([]Book, len(books))
	copy(sorted, books)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].GoodreadsRating > sorted[j].GoodreadsRating
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}
