package service

import (
	"context"

	"github.com/google/uuid"

	bookModel "library-catalog/internal/domains/book/model"
	"library-catalog/internal/domains/genre/model"
)

// ServiceInterface defines the genre use cases behind the catalog pages.
type ServiceInterface interface {
	// List returns every genre sorted by name.
	List(ctx context.Context) ([]model.Genre, error)

	// GetByID returns the genre. Errors: model.ErrGenreNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error)

	// GetWithBooks loads the genre and the full records of its books in
	// parallel. Errors: model.ErrGenreNotFound
	GetWithBooks(ctx context.Context, id uuid.UUID) (*model.Genre, []bookModel.Book, error)

	// Create inserts the genre unless one with the exact same name exists,
	// in which case the existing genre is returned and nothing is written.
	Create(ctx context.Context, genre *model.Genre) (*model.Genre, error)

	// Update renames the genre with the given id. When another genre already
	// has the name, that genre is returned and nothing is written.
	// Errors: model.ErrGenreNotFound
	Update(ctx context.Context, id uuid.UUID, genre *model.Genre) (*model.Genre, error)

	// Delete removes the genre when no book references it.
	// Business rules:
	// - Books still referencing the genre: returns the genre, the books and
	//   model.ErrGenreHasBooks; nothing is deleted. The genre is nil when only
	//   orphaned books still reference the id
	// - Genre already gone and no books: model.ErrGenreNotFound
	Delete(ctx context.Context, id uuid.UUID) (*model.Genre, []bookModel.Book, error)
}
