// Package visit keeps a daily page-visit counter. One row per calendar
// day, UTC, keyed by the date string so increments stay idempotent-free
// and cheap.
package visit

import (
	"context"
	"time"
)

// Stats summarizes visit counts for the stats endpoint.
type Stats struct {
	Today int `json:"today"`
	Total int `json:"total"`
}

// Repository defines the contract for visit storage.
type Repository interface {
	// Increment adds one visit to the given date (YYYY-MM-DD) and
	// returns the day's new count.
	Increment(ctx context.Context, date string) (int, error)
	Stats(ctx context.Context, date string) (Stats, error)
}

// Service provides visit business logic. A clock is injected so tests
// can pin the date.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) today() string {
	return s.now().UTC().Format("2006-01-02")
}

func (s *Service) IncrementToday(ctx context.Context) (int, error) {
	return s.repo.Increment(ctx, s.today())
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	return s.repo.Stats(ctx, s.today())
}
