package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID is returned when a supplied id is not a valid ObjectID hex.
	ErrInvalidID = errors.New("invalid document id")
)
