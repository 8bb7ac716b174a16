package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/shared/validate"
)

// GenreForm - POST /catalog/genre/create and /catalog/genre/:id/update
type GenreForm struct {
	Name string `form:"name"`
}

// Validate trims and escapes the name in place and returns every failed rule.
func (f *GenreForm) Validate() validate.Errors {
	return validate.Run(
		validate.Text("name", &f.Name,
			validation.Required.Error("Genre name required"),
		),
	)
}

// ToEntity converts a validated form into a Genre without an id.
func (f *GenreForm) ToEntity() *Genre {
	return &Genre{Name: f.Name}
}
