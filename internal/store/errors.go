package store

import "errors"

// Error kinds shared across the storage layer and its callers. Repositories
// translate driver errors (pgx.ErrNoRows, SQLSTATE 23505) into these so that
// services and handlers never import pgx directly.
var (
	// ErrNotFound: the requested entity or relation row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict: a uniqueness constraint rejected the write.
	ErrConflict = errors.New("already exists")

	// ErrForbidden: the requester does not own the resource.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidReference: a supplied identifier is malformed or does not
	// resolve to an existing entity.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrInvalidArgument: malformed pagination parameters or missing
	// required fields.
	ErrInvalidArgument = errors.New("invalid argument")
)
