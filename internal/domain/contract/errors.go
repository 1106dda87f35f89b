package contract

import "errors"

// Errors returned by repository implementations.
var (
	ErrNotFound        = errors.New("document not found")
	ErrVersionConflict = errors.New("document version conflict")
	ErrDuplicateKey    = errors.New("duplicate key")
)
