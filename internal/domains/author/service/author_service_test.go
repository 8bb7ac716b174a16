package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/author/model"
	bookModel "library-catalog/internal/domains/book/model"
	"library-catalog/internal/shared/apperr"
	"library-catalog/internal/testutil/memstore"
)

func newService(store *memstore.Store) ServiceInterface {
	return NewAuthorService(store.Authors(), store.Books())
}

func TestAuthorService_List(t *testing.T) {
	store := memstore.New()
	store.AddAuthor(model.Author{FirstName: "Isaac", FamilyName: "Asimov"})
	store.AddAuthor(model.Author{FirstName: "Ben", FamilyName: "Bova"})
	store.AddAuthor(model.Author{FirstName: "Bob", FamilyName: "Billings"})

	authors, err := newService(store).List(context.Background())

	require.NoError(t, err)
	require.Len(t, authors, 3)
	assert.Equal(t, "Asimov", authors[0].FamilyName)
	assert.Equal(t, "Billings", authors[1].FamilyName)
	assert.Equal(t, "Bova", authors[2].FamilyName)
}

func TestAuthorService_GetWithBooks(t *testing.T) {
	t.Run("fetches_concurrently", func(t *testing.T) {
		store := memstore.New()
		author := store.AddAuthor(model.Author{FirstName: "Isaac", FamilyName: "Asimov"})
		store.AddBook(bookModel.Book{Title: "Foundation", Summary: "Psychohistory", AuthorID: author.ID})
		store.OnCall(memstore.Barrier("author.GetByID", "book.ListSummariesByAuthor"))

		got, books, err := newService(store).GetWithBooks(context.Background(), author.ID)

		require.NoError(t, err)
		assert.Equal(t, author.ID, got.ID)
		require.Len(t, books, 1)
		assert.Equal(t, "Foundation", books[0].Title)
		assert.Equal(t, "Psychohistory", books[0].Summary)
	})

	t.Run("no_books", func(t *testing.T) {
		store := memstore.New()
		author := store.AddAuthor(model.Author{FirstName: "Isaac", FamilyName: "Asimov"})

		_, books, err := newService(store).GetWithBooks(context.Background(), author.ID)

		require.NoError(t, err)
		assert.NotNil(t, books)
		assert.Empty(t, books)
	})

	t.Run("not_found", func(t *testing.T) {
		_, _, err := newService(memstore.New()).GetWithBooks(context.Background(), uuid.New())

		assert.ErrorIs(t, err, model.ErrAuthorNotFound)
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("first_error_wins", func(t *testing.T) {
		store := memstore.New()
		author := store.AddAuthor(model.Author{FirstName: "Isaac", FamilyName: "Asimov"})
		boom := errors.New("connection reset")
		store.FailOn("author.GetByID", boom)

		// The book lookup only returns once the failure cancelled it
		store.OnCall(func(ctx context.Context, op string) error {
			if op != "book.ListSummariesByAuthor" {
				return nil
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
				return errors.New("sibling was not cancelled")
			}
		})

		got, books, err := newService(store).GetWithBooks(context.Background(), author.ID)

		assert.ErrorIs(t, err, boom)
		assert.Nil(t, got)
		assert.Nil(t, books)
	})
}

func TestAuthorService_GetForDelete(t *testing.T) {
	store := memstore.New()
	author := store.AddAuthor(model.Author{FirstName: "Isaac", FamilyName: "Asimov"})
	book := store.AddBook(bookModel.Book{Title: "Foundation", ISBN: "9780553293357", AuthorID: author.ID})
	store.AddBook(bookModel.Book{Title: "Other", AuthorID: uuid.New()})
	store.OnCall(memstore.Barrier("author.GetByID", "book.ListByAuthor"))

	got, books, err := newService(store).GetForDelete(context.Background(), author.ID)

	require.NoError(t, err)
	assert.Equal(t, author.ID, got.ID)
	require.Len(t, books, 1)
	assert.Equal(t, book.ID, books[0].ID)
	assert.Equal(t, "9780553293357", books[0].ISBN)
}

func TestAuthorService_GetForDelete_MissingAuthor(t *testing.T) {
	store := memstore.New()
	ghost := uuid.New()
	store.AddBook(bookModel.Book{Title: "Foundation", AuthorID: ghost})

	_, _, err := newService(store).GetForDelete(context.Background(), ghost)

	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestAuthorService_Create(t *testing.T) {
	store := memstore.New()
	svc := newService(store)

	first, err := svc.Create(context.Background(), &model.Author{FirstName: "Isaac", FamilyName: "Asimov"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first.ID)

	// No duplicate-name check for authors
	second, err := svc.Create(context.Background(), &model.Author{FirstName: "Isaac", FamilyName: "Asimov"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, store.Writes())
}

func TestAuthorService_Delete(t *testing.T) {
	t.Run("without_books", func(t *testing.T) {
		store := memstore.New()
		author := store.AddAuthor(model.Author{FirstName: "Isaac", FamilyName: "Asimov"})

		_, books, err := newService(store).Delete(context.Background(), author.ID)

		require.NoError(t, err)
		assert.Empty(t, books)
		_, exists := store.Author(author.ID)
		assert.False(t, exists)
		assert.Equal(t, 1, store.Writes())
	})

	t.Run("refused_with_books", func(t *testing.T) {
		store := memstore.New()
		author := store.AddAuthor(model.Author{FirstName: "Isaac", FamilyName: "Asimov"})
		store.AddBook(bookModel.Book{Title: "Foundation", AuthorID: author.ID})

		got, books, err := newService(store).Delete(context.Background(), author.ID)

		assert.ErrorIs(t, err, model.ErrAuthorHasBooks)
		assert.Equal(t, author.ID, got.ID)
		assert.Len(t, books, 1)
		_, exists := store.Author(author.ID)
		assert.True(t, exists)
		assert.Zero(t, store.Writes())
	})

	t.Run("refused_for_orphaned_books", func(t *testing.T) {
		store := memstore.New()
		ghost := uuid.New()
		store.AddBook(bookModel.Book{Title: "Foundation", AuthorID: ghost})
		store.OnCall(memstore.Barrier("author.GetByID", "book.ListByAuthor"))

		got, books, err := newService(store).Delete(context.Background(), ghost)

		assert.ErrorIs(t, err, model.ErrAuthorHasBooks)
		assert.Nil(t, got)
		require.Len(t, books, 1)
		assert.Equal(t, "Foundation", books[0].Title)
		assert.Zero(t, store.Writes())
	})

	t.Run("already_gone", func(t *testing.T) {
		store := memstore.New()

		_, _, err := newService(store).Delete(context.Background(), uuid.New())

		assert.ErrorIs(t, err, model.ErrAuthorNotFound)
		assert.Zero(t, store.Writes())
	})

	t.Run("store_failure", func(t *testing.T) {
		store := memstore.New()
		author := store.AddAuthor(model.Author{FirstName: "Isaac", FamilyName: "Asimov"})
		boom := errors.New("disk full")
		store.FailOn("author.Delete", boom)

		_, _, err := newService(store).Delete(context.Background(), author.ID)

		assert.ErrorIs(t, err, boom)
	})
}
