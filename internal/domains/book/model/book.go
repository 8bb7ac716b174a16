package model

import (
	"github.com/google/uuid"
)

// Book is read-only from the catalog controllers' point of view: it is only
// consulted to populate detail pages and to decide whether an author or a
// genre may be deleted.
type Book struct {
	ID       uuid.UUID   `json:"id" db:"id"`
	Title    string      `json:"title" db:"title"`
	Summary  string      `json:"summary" db:"summary"`
	ISBN     string      `json:"isbn" db:"isbn"`
	AuthorID uuid.UUID   `json:"author_id" db:"author_id"`
	GenreIDs []uuid.UUID `json:"genre_ids" db:"genre_ids"`
}

// BookSummary is the title/summary projection shown on an author page.
type BookSummary struct {
	ID      uuid.UUID `json:"id" db:"id"`
	Title   string    `json:"title" db:"title"`
	Summary string    `json:"summary" db:"summary"`
}

// URL returns the book detail path.
func (b Book) URL() string {
	return BookURL(b.ID)
}

// URL returns the book detail path.
func (b BookSummary) URL() string {
	return BookURL(b.ID)
}

// BookURL builds the detail path for a book id.
func BookURL(id uuid.UUID) string {
	return "/catalog/book/" + id.String()
}
