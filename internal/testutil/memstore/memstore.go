// Package memstore is an in-memory implementation of the author, genre and
// book repositories for tests. It counts writes and can fail or intercept
// any operation by name ("author.GetByID", "book.ListByGenre", ...).
package memstore

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	authorModel "library-catalog/internal/domains/author/model"
	authorRepo "library-catalog/internal/domains/author/repository"
	bookModel "library-catalog/internal/domains/book/model"
	bookRepo "library-catalog/internal/domains/book/repository"
	genreModel "library-catalog/internal/domains/genre/model"
	genreRepo "library-catalog/internal/domains/genre/repository"
)

// Hook runs before the named operation touches the data. A non-nil error is
// returned to the caller instead of the result.
type Hook func(ctx context.Context, op string) error

type Store struct {
	mu      sync.Mutex
	authors map[uuid.UUID]authorModel.Author
	genres  map[uuid.UUID]genreModel.Genre
	books   []bookModel.Book
	writes  int
	failOn  map[string]error
	hook    Hook
}

func New() *Store {
	return &Store{
		authors: make(map[uuid.UUID]authorModel.Author),
		genres:  make(map[uuid.UUID]genreModel.Genre),
		failOn:  make(map[string]error),
	}
}

// ========================================
// SEEDING & INSPECTION
// ========================================

// AddAuthor stores a copy of a, assigning an id when it has none.
func (s *Store) AddAuthor(a authorModel.Author) authorModel.Author {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	s.authors[a.ID] = a
	return a
}

// AddGenre stores a genre with the given name.
func (s *Store) AddGenre(name string) genreModel.Genre {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := genreModel.Genre{ID: uuid.New(), Name: name}
	s.genres[g.ID] = g
	return g
}

// AddBook stores a copy of b, assigning an id when it has none.
func (s *Store) AddBook(b bookModel.Book) bookModel.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	s.books = append(s.books, b)
	return b
}

// Writes counts successful creates, updates and deletes.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *Store) Author(id uuid.UUID) (authorModel.Author, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.authors[id]
	return a, ok
}

func (s *Store) Genre(id uuid.UUID) (genreModel.Genre, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.genres[id]
	return g, ok
}

// GenreCount returns how many genres are stored.
func (s *Store) GenreCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.genres)
}

// FailOn makes every call of op return err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOn[op] = err
}

// OnCall installs a hook run before every operation.
func (s *Store) OnCall(h Hook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hook = h
}

// call runs the hook outside the lock so hooks may block, then checks the
// injected failures. The caller holds the lock when call returns nil.
func (s *Store) call(ctx context.Context, op string) error {
	s.mu.Lock()
	hook := s.hook
	s.mu.Unlock()

	if hook != nil {
		if err := hook(ctx, op); err != nil {
			return err
		}
	}

	s.mu.Lock()
	if err := s.failOn[op]; err != nil {
		s.mu.Unlock()
		return err
	}
	return nil
}

// ========================================
// REPOSITORY ADAPTERS
// ========================================

func (s *Store) Authors() authorRepo.RepositoryInterface { return authors{s} }
func (s *Store) Genres() genreRepo.RepositoryInterface { return genres{s} }
func (s *Store) Books() bookRepo.RepositoryInterface { return books{s} }

type authors struct{ s *Store }

func (r authors) List(ctx context.Context) ([]authorModel.Author, error) {
	if err := r.s.call(ctx, "author.List"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()

	out := make([]authorModel.Author, 0, len(r.s.authors))
	for _, a := range r.s.authors {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FamilyName != out[j].FamilyName {
			return out[i].FamilyName < out[j].FamilyName
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out, nil
}

func (r authors) GetByID(ctx context.Context, id uuid.UUID) (*authorModel.Author, error) {
	if err := r.s.call(ctx, "author.GetByID"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()

	a, ok := r.s.authors[id]
	if !ok {
		return nil, authorModel.ErrAuthorNotFound
	}
	return &a, nil
}

func (r authors) Create(ctx context.Context, a *authorModel.Author) (*authorModel.Author, error) {
	if err := r.s.call(ctx, "author.Create"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()

	created := *a
	created.ID = uuid.New()
	r.s.authors[created.ID] = created
	r.s.writes++
	return &created, nil
}

func (r authors) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.s.call(ctx, "author.Delete"); err != nil {
		return err
	}
	defer r.s.mu.Unlock()

	if _, ok := r.s.authors[id]; !ok {
		return authorModel.ErrAuthorNotFound
	}
	delete(r.s.authors, id)
	r.s.writes++
	return nil
}

type genres struct{ s *Store }

func (r genres) List(ctx context.Context) ([]genreModel.Genre, error) {
	if err := r.s.call(ctx, "genre.List"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()

	out := make([]genreModel.Genre, 0, len(r.s.genres))
	for _, g := range r.s.genres {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r genres) GetByID(ctx context.Context, id uuid.UUID) (*genreModel.Genre, error) {
	if err := r.s.call(ctx, "genre.GetByID"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()

	g, ok := r.s.genres[id]
	if !ok {
		return nil, genreModel.ErrGenreNotFound
	}
	return &g, nil
}

func (r genres) GetByName(ctx context.Context, name string) (*genreModel.Genre, error) {
	if err := r.s.call(ctx, "genre.GetByName"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()

	for _, g := range r.s.genres {
		if g.Name == name {
			return &g, nil
		}
	}
	return nil, genreModel.ErrGenreNotFound
}

func (r genres) Create(ctx context.Context, g *genreModel.Genre) (*genreModel.Genre, error) {
	if err := r.s.call(ctx, "genre.Create"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()

	created := *g
	created.ID = uuid.New()
	r.s.genres[created.ID] = created
	r.s.writes++
	return &created, nil
}

func (r genres) Update(ctx context.Context, g *genreModel.Genre) (*genreModel.Genre, error) {
	if err := r.s.call(ctx, "genre.Update"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()

	if _, ok := r.s.genres[g.ID]; !ok {
		return nil, genreModel.ErrGenreNotFound
	}
	updated := *g
	r.s.genres[g.ID] = updated
	r.s.writes++
	return &updated, nil
}

func (r genres) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.s.call(ctx, "genre.Delete"); err != nil {
		return err
	}
	defer r.s.mu.Unlock()

	if _, ok := r.s.genres[id]; !ok {
		return genreModel.ErrGenreNotFound
	}
	delete(r.s.genres, id)
	r.s.writes++
	return nil
}

type books struct{ s *Store }

func (r books) ListSummariesByAuthor(ctx context.Context, authorID uuid.UUID) ([]bookModel.BookSummary, error) {
	if err := r.s.call(ctx, "book.ListSummariesByAuthor"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()

	out := []bookModel.BookSummary{}
	for _, b := range r.s.sortedBooks() {
		if b.AuthorID == authorID {
			out = append(out, bookModel.BookSummary{ID: b.ID, Title: b.Title, Summary: b.Summary})
		}
	}
	return out, nil
}

func (r books) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]bookModel.Book, error) {
	if err := r.s.call(ctx, "book.ListByAuthor"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()

	out := []bookModel.Book{}
	for _, b := range r.s.sortedBooks() {
		if b.AuthorID == authorID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r books) ListByGenre(ctx context.Context, genreID uuid.UUID) ([]bookModel.Book, error) {
	if err := r.s.call(ctx, "book.ListByGenre"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()

	out := []bookModel.Book{}
	for _, b := range r.s.sortedBooks() {
		for _, id := range b.GenreIDs {
			if id == genreID {
				out = append(out, b)
				break
			}
		}
	}
	return out, nil
}

// sortedBooks returns the books ordered by title. Caller holds the lock.
func (s *Store) sortedBooks() []bookModel.Book {
	out := append([]bookModel.Book(nil), s.books...)
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

// Barrier returns a hook that holds each of the named operations until all
// of them have started. An operation still waiting after a second fails,
// which is how tests detect lookups that ran one after the other.
func Barrier(ops ...string) Hook {
	var (
		mu      sync.Mutex
		arrived int
		all     = make(chan struct{})
	)
	want := make(map[string]bool, len(ops))
	for _, op := range ops {
		want[op] = true
	}

	return func(ctx context.Context, op string) error {
		if !want[op] {
			return nil
		}

		mu.Lock()
		arrived++
		if arrived == len(ops) {
			close(all)
		}
		mu.Unlock()

		select {
		case <-all:
			return nil
		case <-time.After(time.Second):
			return errors.New(op + " did not run concurrently")
		}
	}
}
