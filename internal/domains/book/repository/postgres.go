package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/book/model"
)

// postgresRepository implements RepositoryInterface on top of pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new book repository instance
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// selectBooks aggregates the genre ids of each book into one row.
const selectBooks = `
	SELECT b.id, b.title, b.summary, b.isbn, b.author_id,
	       COALESCE(array_agg(bg.genre_id::text) FILTER (WHERE bg.genre_id IS NOT NULL), '{}') AS genre_ids
	FROM books b
	LEFT JOIN book_genres bg ON bg.book_id = b.id
`

func (r *postgresRepository) ListSummariesByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.BookSummary, error) {
	query := `
		SELECT id, title, summary
		FROM books
		WHERE author_id = $1
		ORDER BY title ASC
	`

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books by author: %w", err)
	}
	defer rows.Close()

	books := []model.BookSummary{}
	for rows.Next() {
		var b model.BookSummary
		if err := rows.Scan(&b.ID, &b.Title, &b.Summary); err != nil {
			return nil, fmt.Errorf("failed to scan book summary: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	query := selectBooks + `
		WHERE b.author_id = $1
		GROUP BY b.id
		ORDER BY b.title ASC
	`

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books by author: %w", err)
	}
	return scanBooks(rows)
}

func (r *postgresRepository) ListByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error) {
	query := selectBooks + `
		WHERE b.id IN (SELECT book_id FROM book_genres WHERE genre_id = $1)
		GROUP BY b.id
		ORDER BY b.title ASC
	`

	rows, err := r.pool.Query(ctx, query, genreID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books by genre: %w", err)
	}
	return scanBooks(rows)
}

func scanBooks(rows pgx.Rows) ([]model.Book, error) {
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		var (
			b        model.Book
			genreIDs []string
		)
		if err := rows.Scan(&b.ID, &b.Title, &b.Summary, &b.ISBN, &b.AuthorID, &genreIDs); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}

		b.GenreIDs = make([]uuid.UUID, 0, len(genreIDs))
		for _, raw := range genreIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid genre id %q on book %s: %w", raw, b.ID, err)
			}
			b.GenreIDs = append(b.GenreIDs, id)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}

	return books, nil
}
