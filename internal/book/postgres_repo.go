package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	sqlListTitles = `
		SELECT title, book_id
		FROM books
		WHERE title LIKE $1
		ORDER BY title
		LIMIT $2 OFFSET $3`

	sqlCountTitles = `SELECT COUNT(*) FROM books WHERE title LIKE $1`

	sqlGetByID = `
		SELECT book_id, title, authors, COALESCE(description, ''), COALESCE(pages, 0),
		       rating, COALESCE(rating_count, 0), COALESCE(genres, ''), COALESCE(image_url, '')
		FROM books
		WHERE book_id = $1`
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

// ListTitles runs the page query and the count query on a single pooled
// connection.
func (r *PostgresRepo) ListTitles(ctx context.Context, startLetter string, limit, offset int) ([]Title, int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	pattern := prefixPattern(startLetter)

	rows, err := conn.Query(ctx, sqlListTitles, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Title{}
	for rows.Next() {
		var t Title
		if err := rows.Scan(&t.Title, &t.ID); err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := conn.QueryRow(ctx, sqlCountTitles, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return Book{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	var (
		b      Book
		rating pgtype.Numeric
	)
	err = conn.QueryRow(ctx, sqlGetByID, id).Scan(
		&b.ID, &b.Title, &b.Authors, &b.Description, &b.Pages,
		&rating, &b.RatingCount, &b.Genres, &b.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return Book{}, err
	}

	if b.Rating, err = numericToFloat(rating); err != nil {
		return Book{}, fmt.Errorf("decode rating for %s: %w", id, err)
	}
	return b, nil
}

func numericToFloat(n pgtype.Numeric) (float64, error) {
	if !n.Valid {
		return 0, nil
	}
	f, err := n.Float64Value()
	if err != nil {
		return 0, err
	}
	return f.Float64, nil
}

// prefixPattern turns the starting letter into a LIKE pattern, escaping the
// wildcard characters it may contain.
func prefixPattern(startLetter string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(startLetter)
	return escaped + "%"
}
