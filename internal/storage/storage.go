// Package storage defines the persistence error taxonomy shared by
// repositories and handlers.
package storage

import "errors"

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned on unique-key violations.
	ErrDuplicate = errors.New("record already exists")
)
