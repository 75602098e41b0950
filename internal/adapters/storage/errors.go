package storage

import "errors"

// Sentinel kinds for snapshot store errors.
var (
	ErrNotFound   = errors.New("snapshot not found")
	ErrInvalidKey = errors.New("invalid snapshot key")
)
