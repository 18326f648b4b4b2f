package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no page.
	ErrNotFound = errors.New("page not found")
)
