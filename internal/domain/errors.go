package domain

import "errors"

// Domain errors (no external dependencies). Handlers map these to HTTP status codes.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrValidation   = errors.New("validation failed")
	ErrTypeMismatch = errors.New("section payload does not match declared type")
	ErrRender       = errors.New("document rendering failed")
	ErrDuplicate    = errors.New("duplicate resource")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access denied")
	ErrConflict     = errors.New("conflict with current state")
)
