package repository

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author/model"
)

// RepositoryInterface defines data access for authors.
type RepositoryInterface interface {
	// List returns every author ordered by family name, then first name.
	List(ctx context.Context) ([]model.Author, error)

	// GetByID returns model.ErrAuthorNotFound when no author has the id.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// Create assigns a new id and inserts the author.
	Create(ctx context.Context, author *model.Author) (*model.Author, error)

	// Delete removes the author. Returns model.ErrAuthorNotFound if nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
