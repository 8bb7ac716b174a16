package model

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/shared/validate"
)

// AuthorForm - POST /catalog/author/create
// After Validate the fields hold the sanitized values, which is what the
// re-rendered form echoes back.
type AuthorForm struct {
	FirstName   string `form:"first_name"`
	FamilyName  string `form:"family_name"`
	DateOfBirth string `form:"date_of_birth"`
	DateOfDeath string `form:"date_of_death"`
}

// Validate sanitizes the form in place and returns every failed rule.
func (f *AuthorForm) Validate() validate.Errors {
	return validate.Run(
		validate.Text("first_name", &f.FirstName,
			validation.Required.Error("First name must be specified"),
			validate.Alphanumeric.Error("First name has non-alphanumeric characters"),
		),
		validate.Text("family_name", &f.FamilyName,
			validation.Required.Error("Family name must be specified"),
			validate.Alphanumeric.Error("Family name has non-alphanumeric characters"),
		),
		validate.Plain("date_of_birth", &f.DateOfBirth,
			validate.ISO8601.Error("Invalid date of birth"),
		),
		validate.Plain("date_of_death", &f.DateOfDeath,
			validate.ISO8601.Error("Invalid date of death"),
		),
	)
}

// ToEntity converts a validated form into an Author without an id.
func (f *AuthorForm) ToEntity() (*Author, error) {
	born, err := validate.ParseDate(f.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("date_of_birth: %w", err)
	}
	died, err := validate.ParseDate(f.DateOfDeath)
	if err != nil {
		return nil, fmt.Errorf("date_of_death: %w", err)
	}

	return &Author{
		FirstName:   f.FirstName,
		FamilyName:  f.FamilyName,
		DateOfBirth: born,
		DateOfDeath: died,
	}, nil
}
