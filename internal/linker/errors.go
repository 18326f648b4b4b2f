package linker

import "errors"

var (
	// ErrTaskNotFound is returned by LinkTask for an unknown page ID.
	ErrTaskNotFound = errors.New("task not found")
)
