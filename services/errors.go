package services

import (
	"errors"
)

// Error kinds surfaced by the engines. Controllers match these with
// errors.Is and map them to HTTP statuses; anything else is treated as an
// internal failure and never leaks store diagnostics to the caller.
var (
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("forbidden")
	ErrNotFound               = errors.New("not found")
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrConflict               = errors.New("conflict")
	ErrInsufficientReputation = errors.New("insufficient reputation")
	ErrDependency             = errors.New("dependency failure")
)
