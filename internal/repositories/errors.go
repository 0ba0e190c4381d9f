package repositories

import "errors"

var (
	// ErrNotFound is wrapped by every lookup that matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is wrapped when a write violates a unique index.
	ErrDuplicate = errors.New("duplicate record")
)
