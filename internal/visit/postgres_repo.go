package visit

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Increment(ctx context.Context, date string) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	const query = `
		INSERT INTO visits (date, count) VALUES ($1, 1)
		ON CONFLICT (date) DO UPDATE SET count = visits.count + 1
		RETURNING count`
	var count int
	if err := r.db.QueryRow(ctx, query, date).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepo) Stats(ctx context.Context, date string) (Stats, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var s Stats
	const todaySQL = `SELECT count FROM visits WHERE date = $1`
	if err := r.db.QueryRow(ctx, todaySQL, date).Scan(&s.Today); err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return Stats{}, err
		}
	}

	const totalSQL = `SELECT COALESCE(SUM(count), 0) FROM visits`
	if err := r.db.QueryRow(ctx, totalSQL).Scan(&s.Total); err != nil {
		return Stats{}, err
	}
	return s, nil
}
