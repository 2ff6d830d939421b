package domain

import "errors"

var (
	ErrNameRequired     = errors.New("name is required")
	ErrStatusRequired   = errors.New("status is required")
	ErrInvalidStatus    = errors.New("status must be yes, no or maybe")
	ErrInvalidPartySize = errors.New("party size must be at least 1")
	ErrInvalidSource    = errors.New("unknown response source")
)
