package models

import "errors"

// Sentinel errors shared by services and mapped to HTTP statuses in the
// controllers. Wrap with pkg/errors at the call site so errors.Is still
// matches.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("duplicate resource")
	ErrEmptyCart          = errors.New("cannot checkout with an empty cart")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrBadRequest         = errors.New("invalid request")
)
