package model

import (
	"errors"

	"library-catalog/internal/shared/apperr"
)

var (
	// ErrGenreNotFound carries the not-found marker (404) for the error handler.
	ErrGenreNotFound = apperr.NotFound("Genre")

	// ErrGenreHasBooks is a refusal rendered as the delete confirmation page.
	ErrGenreHasBooks = errors.New("cannot delete genre with linked books")
)
