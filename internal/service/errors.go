package service

import "errors"

// Service-level errors. The HTTP controller maps these to status codes;
// anything else is treated as an internal error.
var (
	// ErrNotFound means the referenced adventure, photo or user does not exist
	ErrNotFound = errors.New("service: not found")
	// ErrForbidden means the caller lacks the required relationship
	// (not the creator, not a participant)
	ErrForbidden = errors.New("service: forbidden")
)
