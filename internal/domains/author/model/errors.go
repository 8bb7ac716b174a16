package model

import (
	"errors"

	"library-catalog/internal/shared/apperr"
)

var (
	// ErrAuthorNotFound carries the not-found marker (404) for the error handler.
	ErrAuthorNotFound = apperr.NotFound("Author")

	// ErrAuthorHasBooks is a refusal, not a failure: handlers render the
	// delete confirmation with the blocking books instead of propagating it.
	ErrAuthorHasBooks = errors.New("cannot delete author with linked books")
)
