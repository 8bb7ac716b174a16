package model

import (
	"github.com/google/uuid"
)

// Genre is a category of books. Names are unique by convention only: the
// services check for an existing name before writing, the schema does not.
type Genre struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}

// ListURL is where genres are listed and where deletes land.
const ListURL = "/catalog/genres"

// GenreURL builds the detail path for a genre id.
func GenreURL(id uuid.UUID) string {
	return "/catalog/genre/" + id.String()
}

// URL returns the genre's detail path.
func (g Genre) URL() string {
	return GenreURL(g.ID)
}
