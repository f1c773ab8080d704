package storage

import "errors"

// Common client storage errors
var (
	// ErrCredentialsNotFound indicates that no session credentials are stored
	ErrCredentialsNotFound = errors.New("credentials not found")
)
