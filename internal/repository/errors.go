package repository

import "errors"

// ErrNotFound indicates the requested row does not exist. Callers match it
// with errors.Is after the repository wraps it with entity context.
var ErrNotFound = errors.New("not found")
