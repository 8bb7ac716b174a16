package repository

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/book/model"
)

// RepositoryInterface is the read-only book lookup used by the author and
// genre services. Every method returns an empty (non-nil) slice when nothing
// references the id.
type RepositoryInterface interface {
	// ListSummariesByAuthor returns the title/summary projection of the
	// author's books, ordered by title.
	ListSummariesByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.BookSummary, error)

	// ListByAuthor returns full book records written by the author.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error)

	// ListByGenre returns full book records listing the genre.
	ListByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error)
}
