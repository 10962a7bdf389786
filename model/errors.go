package model

import "errors"

// Domain errors surfaced by the repository layer. Handlers translate these
// into HTTP status codes; anything else is reported as a server error.
var (
	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate means the write would violate a uniqueness invariant:
	// a song already in a playlist, or a song already favorited.
	ErrDuplicate = errors.New("already exists")
)
