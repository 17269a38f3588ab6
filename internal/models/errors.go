package models

import "errors"

// Domain failures returned by repositories and services. Handlers map
// them to HTTP statuses at the boundary.
var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("permission denied")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrMissingConfig      = errors.New("missing server configuration")
)

// ValidationError reports malformed or missing input. The message is
// safe to surface to clients.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }
