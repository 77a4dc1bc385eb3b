package repositories

import "errors"

// Sentinel errors shared by every repository implementation, regardless of
// backing store. Handlers map these to HTTP statuses.
var (
	ErrNotFound       = errors.New("record not found")
	ErrAlreadyShared  = errors.New("post already shared by this user")
	ErrDuplicateEmail = errors.New("email already registered")
)
