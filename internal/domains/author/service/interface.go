package service

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author/model"
	bookModel "library-catalog/internal/domains/book/model"
)

// ServiceInterface defines the author use cases behind the catalog pages.
type ServiceInterface interface {
	// List returns every author sorted by name.
	List(ctx context.Context) ([]model.Author, error)

	// GetWithBooks loads the author and the title/summary of its books in
	// parallel. Errors: model.ErrAuthorNotFound
	GetWithBooks(ctx context.Context, id uuid.UUID) (*model.Author, []bookModel.BookSummary, error)

	// GetForDelete loads the author and the full records of the books that
	// block its deletion, in parallel. Errors: model.ErrAuthorNotFound
	GetForDelete(ctx context.Context, id uuid.UUID) (*model.Author, []bookModel.Book, error)

	// Create inserts the author. There is no duplicate-name check.
	Create(ctx context.Context, author *model.Author) (*model.Author, error)

	// Delete removes the author when no book references it.
	// Business rules:
	// - Books still referencing the author: returns the author, the books and
	//   model.ErrAuthorHasBooks; nothing is deleted. The author is nil when
	//   only orphaned books still reference the id
	// - Author already gone and no books: model.ErrAuthorNotFound
	Delete(ctx context.Context, id uuid.UUID) (*model.Author, []bookModel.Book, error)
}
