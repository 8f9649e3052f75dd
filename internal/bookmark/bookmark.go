// Package bookmark stores which catalog books a user has saved. Books are
// referenced by their catalog URL, the one stable identifier the upstream
// feed guarantees.
package bookmark

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrAlreadyExists is returned when the user has already bookmarked
	// the book.
	ErrAlreadyExists = errors.New("bookmark already exists")
	// ErrNotFound is returned when no matching bookmark exists.
	ErrNotFound = errors.New("bookmark not found")
)

// Bookmark is one saved book for one user. BookTitle is denormalized so
// lists render without refetching the catalog.
type Bookmark struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	BookURL   string    `json:"bookUrl"`
	BookTitle string    `json:"bookTitle"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository defines the contract for bookmark storage.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Bookmark, error)
	Create(ctx context.Context, b *Bookmark) error
	Delete(ctx context.Context, userID, bookURL string) error
}

// Service provides bookmark business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID string) ([]Bookmark, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Add(ctx context.Context, userID, bookURL, bookTitle string) (Bookmark, error) {
	b := Bookmark{
		UserID:    userID,
		BookURL:   bookURL,
		BookTitle: bookTitle,
	}
	if err := s.repo.Create(ctx, &b); err != nil {
		return Bookmark{}, err
	}
	return b, nil
}

func (s *Service) Remove(ctx context.Context, userID, bookURL string) error {
	return s.repo.Delete(ctx, userID, bookURL)
}
