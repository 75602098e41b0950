package config

import "errors"

// Sentinel kinds for configuration errors.
var (
	ErrEmptyAddr      = errors.New("addr must not be empty")
	ErrUnknownBackend = errors.New("storage_backend must be file or sqlite")
)
