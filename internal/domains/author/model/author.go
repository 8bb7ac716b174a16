package model

import (
	"time"

	"github.com/google/uuid"
)

// Author is a person who wrote at least one book in the catalog.
type Author struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	FirstName   string     `json:"first_name" db:"first_name"`
	FamilyName  string     `json:"family_name" db:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty" db:"date_of_death"`
}

// ListURL is where authors are listed and where deletes land.
const ListURL = "/catalog/authors"

// AuthorURL builds the detail path for an author id.
func AuthorURL(id uuid.UUID) string {
	return "/catalog/author/" + id.String()
}

// URL returns the author's detail path.
func (a Author) URL() string {
	return AuthorURL(a.ID)
}

// Name returns "Family, First". Empty when either part is missing.
func (a Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

const displayDateLayout = "Jan 2, 2006"

// Lifespan formats the known dates as "Jan 2, 1900 - Mar 4, 1980".
// Unknown dates render as empty strings on their side of the dash.
func (a Author) Lifespan() string {
	if a.DateOfBirth == nil && a.DateOfDeath == nil {
		return ""
	}
	return formatDate(a.DateOfBirth) + " - " + formatDate(a.DateOfDeath)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(displayDateLayout)
}
