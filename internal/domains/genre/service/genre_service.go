package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	bookModel "library-catalog/internal/domains/book/model"
	bookRepo "library-catalog/internal/domains/book/repository"
	"library-catalog/internal/domains/genre/model"
	"library-catalog/internal/domains/genre/repository"
)

// genreService implements ServiceInterface
type genreService struct {
	repo  repository.RepositoryInterface
	books bookRepo.RepositoryInterface
}

// NewGenreService creates a new genre service instance
func NewGenreService(repo repository.RepositoryInterface, books bookRepo.RepositoryInterface) ServiceInterface {
	return &genreService{
		repo:  repo,
		books: books,
	}
}

func (s *genreService) List(ctx context.Context) ([]model.Genre, error) {
	return s.repo.List(ctx)
}

func (s *genreService) GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *genreService) GetWithBooks(ctx context.Context, id uuid.UUID) (*model.Genre, []bookModel.Book, error) {
	var (
		genre *model.Genre
		books []bookModel.Book
	)

	// Both lookups start at once; the first failure cancels the other.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		genre, err = s.repo.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = s.books.ListByGenre(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return genre, books, nil
}

// fetchForDelete loads the genre and its books in parallel. A missing genre
// comes back as nil without cancelling the book lookup.
func (s *genreService) fetchForDelete(ctx context.Context, id uuid.UUID) (*model.Genre, []bookModel.Book, error) {
	var (
		genre *model.Genre
		books []bookModel.Book
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.repo.GetByID(gctx, id)
		if err != nil {
			if errors.Is(err, model.ErrGenreNotFound) {
				return nil
			}
			return err
		}
		genre = found
		return nil
	})
	g.Go(func() error {
		var err error
		books, err = s.books.ListByGenre(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return genre, books, nil
}

// findByName returns nil, nil when no genre has the name.
func (s *genreService) findByName(ctx context.Context, name string) (*model.Genre, error) {
	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, model.ErrGenreNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return existing, nil
}

func (s *genreService) Create(ctx context.Context, genre *model.Genre) (*model.Genre, error) {
	// Best effort: two concurrent creates with the same name can both pass.
	existing, err := s.findByName(ctx, genre.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.Debug().
			Str("genre_id", existing.ID.String()).
			Str("name", existing.Name).
			Msg("genre_exists")
		return existing, nil
	}

	created, err := s.repo.Create(ctx, genre)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("genre_id", created.ID.String()).
		Str("name", created.Name).
		Msg("genre_created")

	return created, nil
}

func (s *genreService) Update(ctx context.Context, id uuid.UUID, genre *model.Genre) (*model.Genre, error) {
	existing, err := s.findByName(ctx, genre.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return existing, nil
	}

	genre.ID = id
	updated, err := s.repo.Update(ctx, genre)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("genre_id", updated.ID.String()).
		Str("name", updated.Name).
		Msg("genre_updated")

	return updated, nil
}

func (s *genreService) Delete(ctx context.Context, id uuid.UUID) (*model.Genre, []bookModel.Book, error) {
	// Read-then-write without isolation, same as authors.
	genre, books, err := s.fetchForDelete(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if len(books) > 0 {
		log.Info().
			Str("genre_id", id.String()).
			Int("book_count", len(books)).
			Msg("genre_delete_refused")
		return genre, books, fmt.Errorf("%w: genre has %d linked books", model.ErrGenreHasBooks, len(books))
	}
	if genre == nil {
		return nil, nil, model.ErrGenreNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, nil, err
	}

	log.Warn().Str("genre_id", id.String()).Msg("genre_deleted")
	return genre, nil, nil
}
