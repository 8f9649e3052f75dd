package like

import (
	"context"
	"time"

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

func (r *PostgresRepo) Toggle(ctx context.Context, userID, bookURL string) (ToggleResult, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return ToggleResult{}, err
	}
	defer tx.Rollback(ctx)

	const deleteSQL = `DELETE FROM likes WHERE user_id = $1 AND book_url = $2`
	tag, err := tx.Exec(ctx, deleteSQL, userID, bookURL)
	if err != nil {
		return ToggleResult{}, err
	}

	var result ToggleResult
	if tag.RowsAffected() > 0 {
		// Was liked, now unliked.
		const decSQL = `
			UPDATE like_counts SET count = GREATEST(count - 1, 0)
			WHERE book_url = $1
			RETURNING count`
		if err := tx.QueryRow(ctx, decSQL, bookURL).Scan(&result.Count); err != nil {
			return ToggleResult{}, err
		}
	} else {
		const insertSQL = `INSERT INTO likes (id, user_id, book_url) VALUES (gen_random_uuid(), $1, $2)`
		if _, err := tx.Exec(ctx, insertSQL, userID, bookURL); err != nil {
			return ToggleResult{}, err
		}
		const incSQL = `
			INSERT INTO like_counts (book_url, count) VALUES ($1, 1)
			ON CONFLICT (book_url) DO UPDATE SET count = like_counts.count + 1
			RETURNING count`
		if err := tx.QueryRow(ctx, incSQL, bookURL).Scan(&result.Count); err != nil {
			return ToggleResult{}, err
		}
		result.Liked = true
	}

	if err := tx.Commit(ctx); err != nil {
		return ToggleResult{}, err
	}
	return result, nil
}

func (r *PostgresRepo) ListByUser(ctx context.Context, userID string) ([]Like, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	const query = `
		SELECT id, user_id, book_url, created_at
		FROM likes
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var likes []Like
	for rows.Next() {
		var l Like
		if err := rows.Scan(&l.ID, &l.UserID, &l.BookURL, &l.CreatedAt); err != nil {
			return nil, err
		}
		likes = append(likes, l)
	}
	return likes, rows.Err()
}

func (r *PostgresRepo) Counts(ctx context.Context, bookURLs []string) (map[string]int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	const query = `SELECT book_url, count FROM like_counts WHERE book_url = ANY($1)`
	rows, err := r.db.Query(ctx, query, bookURLs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var url string
		var count int
		if err := rows.Scan(&url, &count); err != nil {
			return nil, err
		}
		counts[url] = count
	}
	return counts, rows.Err()
}
