package store

import "errors"

var (
	// ErrValidation marks an add or update rejected because a required
	// field was missing or out of range. The document is unchanged.
	ErrValidation = errors.New("store: validation rejected")

	// ErrPersistence marks a failed durable write. The in-memory document
	// is rolled back so it never diverges from storage.
	ErrPersistence = errors.New("store: persistence failed")
)
