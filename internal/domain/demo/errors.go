package demo

import "errors"

// Error taxonomy for the demo store. Ownership misses deliberately map to
// ErrNotFound rather than a forbidden error so responses never reveal
// whether a resource exists under another account.
var (
	ErrValidation    = errors.New("validation failed")
	ErrQuotaExceeded = errors.New("demo limit reached")
	ErrNotFound      = errors.New("not found")
)
