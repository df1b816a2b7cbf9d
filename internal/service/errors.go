package service

import "errors"

// ErrUnauthenticated is returned when an operation that needs a user identity
// is called without one. It is never silently treated as a no-op.
var ErrUnauthenticated = errors.New("authentication required")
