package repository

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/genre/model"
)

// RepositoryInterface defines data access for genres.
type RepositoryInterface interface {
	// List returns every genre ordered by name.
	List(ctx context.Context) ([]model.Genre, error)

	// GetByID returns model.ErrGenreNotFound when no genre has the id.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error)

	// GetByName matches the name exactly (case-sensitive).
	// Returns model.ErrGenreNotFound when no genre has the name.
	GetByName(ctx context.Context, name string) (*model.Genre, error)

	// Create assigns a new id and inserts the genre.
	Create(ctx context.Context, genre *model.Genre) (*model.Genre, error)

	// Update overwrites the genre with genre.ID.
	// Returns model.ErrGenreNotFound when the id does not exist.
	Update(ctx context.Context, genre *model.Genre) (*model.Genre, error)

	// Delete removes the genre. Returns model.ErrGenreNotFound if nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
