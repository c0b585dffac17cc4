package repository

import "errors"

// ErrNotFound is returned by implementations when the requested record does
// not exist.
var ErrNotFound = errors.New("not found")
