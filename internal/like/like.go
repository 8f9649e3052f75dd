// Package like tracks per-user likes on catalog books and keeps an
// aggregate counter per book so counts can be served without scanning
// the likes table.
package like

import (
	"context"
	"time"
)

// Like is one user's like of one book.
type Like struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	BookURL   string    `json:"bookUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToggleResult reports the state after a toggle.
type ToggleResult struct {
	Liked bool `json:"liked"`
	Count int  `json:"count"`
}

// Repository defines the contract for like storage.
type Repository interface {
	// Toggle flips the like state for (userID, bookURL) and returns the
	// resulting state together with the updated aggregate count.
	Toggle(ctx context.Context, userID, bookURL string) (ToggleResult, error)
	ListByUser(ctx context.Context, userID string) ([]Like, error)
	// Counts returns the aggregate count for each requested URL. URLs
	// with no likes are absent from the result.
	Counts(ctx context.Context, bookURLs []string) (map[string]int, error)
}

// Service provides like business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Toggle(ctx context.Context, userID, bookURL string) (ToggleResult, error) {
	return s.repo.Toggle(ctx, userID, bookURL)
}

func (s *Service) List(ctx context.Context, userID string) ([]Like, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Counts returns a count for every requested URL, filling zero for books
// nobody has liked yet.
func (s *Service) Counts(ctx context.Context, bookURLs []string) (map[string]int, error) {
	counts, err := s.repo.Counts(ctx, bookURLs)
	if err != nil {
		return nil, err
	}
	result := make(map[string]int, len(bookURLs))
	for _, u := range bookURLs {
		result[u] = counts[u]
	}
	return result, nil
}
