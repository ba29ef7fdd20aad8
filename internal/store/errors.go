package store

import "errors"

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write collides with an existing
// document (e.g., duplicate email).
var ErrConflict = errors.New("conflict")
