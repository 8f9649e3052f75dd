package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/crayonzgrim/free-coders-books/internal/platform/source"
	"github.com/crayonzgrim/free-coders-books/internal/slug"
)

// FetchFunc retrieves the raw upstream catalog tree.
type FetchFunc func(ctx context.Context) (*Tree, error)

// HTTPFetch fetches the catalog document from url via client.
func HTTPFetch(client *source.Client, url string) FetchFunc {
	return func(ctx context.Context) (*Tree, error) {
		var tree Tree
		if err := client.GetJSON(ctx, url, &tree); err != nil {
			return nil, fmt.Errorf("fetch catalog: %w", err)
		}
		return &tree, nil
	}
}

// Service serves the normalized catalog out of a single time-windowed
// cache slot; the flattened list is rebuilt on every cache miss and is
// immutable in between.
type Service struct {
	cache *source.Cache[[]Book]
}

// NewService wires fetch behind a cache with the given window.
func NewService(fetch FetchFunc, ttl time.Duration, metrics *source.Metrics) *Service {
	refresh := func(ctx context.Context) ([]Book, error) {
		tree, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		return Flatten(tree), nil
	}
	return &Service{cache: source.NewCache("catalog", ttl, refresh, metrics)}
}

// AllBooks returns every normalized book in the catalog.
func (s *Service) AllBooks(ctx context.Context) ([]Book, error) {
	return s.cache.Get(ctx)
}

// BooksByCategorySlug returns the books whose slugified category matches.
func (s *Service) BooksByCategorySlug(ctx context.Context, categorySlug string) ([]Book, error) {
	books, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	var out []Book
	for _, b := range books {
		if slug.Make(b.Category) == categorySlug {
			out = append(out, b)
		}
	}
	return out, nil
}

// BooksByLanguage returns the books in the given language code.
func (s *Service) BooksByLanguage(ctx context.Context, code string) ([]Book, error) {
	books, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByLanguage(books, code), nil
}

// AllCategories returns category roll-ups, most populous first.
func (s *Service) AllCategories(ctx context.Context) ([]CategoryCount, error) {
	books, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	return Categories(books), nil
}

// AllLanguages returns language roll-ups, most populous first.
func (s *Service) AllLanguages(ctx context.Context) ([]LanguageCount, error) {
	books, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	return Languages(books), nil
}
