package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/author/repository"
	bookModel "library-catalog/internal/domains/book/model"
	bookRepo "library-catalog/internal/domains/book/repository"
)

// authorService implements ServiceInterface
type authorService struct {
	repo  repository.RepositoryInterface
	books bookRepo.RepositoryInterface
}

// NewAuthorService creates a new author service instance
func NewAuthorService(repo repository.RepositoryInterface, books bookRepo.RepositoryInterface) ServiceInterface {
	return &authorService{
		repo:  repo,
		books: books,
	}
}

func (s *authorService) List(ctx context.Context) ([]model.Author, error) {
	return s.repo.List(ctx)
}

func (s *authorService) GetWithBooks(ctx context.Context, id uuid.UUID) (*model.Author, []bookModel.BookSummary, error) {
	var (
		author *model.Author
		books  []bookModel.BookSummary
	)

	// Both lookups start at once; the first failure cancels the other.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		author, err = s.repo.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = s.books.ListSummariesByAuthor(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return author, books, nil
}

func (s *authorService) GetForDelete(ctx context.Context, id uuid.UUID) (*model.Author, []bookModel.Book, error) {
	author, books, err := s.fetchForDelete(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if author == nil {
		return nil, nil, model.ErrAuthorNotFound
	}
	return author, books, nil
}

// fetchForDelete loads the author and its books in parallel. A missing author
// comes back as nil without cancelling the book lookup, so books still
// pointing at a deleted author are reported.
func (s *authorService) fetchForDelete(ctx context.Context, id uuid.UUID) (*model.Author, []bookModel.Book, error) {
	var (
		author *model.Author
		books  []bookModel.Book
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.repo.GetByID(gctx, id)
		if err != nil {
			if errors.Is(err, model.ErrAuthorNotFound) {
				return nil
			}
			return err
		}
		author = found
		return nil
	})
	g.Go(func() error {
		var err error
		books, err = s.books.ListByAuthor(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return author, books, nil
}

func (s *authorService) Create(ctx context.Context, author *model.Author) (*model.Author, error) {
	created, err := s.repo.Create(ctx, author)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("author_id", created.ID.String()).
		Str("name", created.Name()).
		Msg("author_created")

	return created, nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) (*model.Author, []bookModel.Book, error) {
	// Read-then-write without isolation: a book added between the check and
	// the delete is not noticed.
	author, books, err := s.fetchForDelete(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	// Books win over a missing author: the refusal still lists them.
	if len(books) > 0 {
		log.Info().
			Str("author_id", id.String()).
			Int("book_count", len(books)).
			Msg("author_delete_refused")
		return author, books, fmt.Errorf("%w: author has %d linked books", model.ErrAuthorHasBooks, len(books))
	}
	if author == nil {
		return nil, nil, model.ErrAuthorNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, nil, err
	}

	log.Warn().Str("author_id", id.String()).Msg("author_deleted")
	return author, nil, nil
}
