package services

import "errors"

var (
	// ErrNotFound maps to HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrValidation maps to HTTP 400.
	ErrValidation = errors.New("invalid input")
	// ErrStateTransition is returned when an order status change is
	// requested out of order (e.g. completing an unshipped order). Maps to 409.
	ErrStateTransition = errors.New("invalid status transition")
	// ErrForbidden maps to HTTP 403 (acting on a resource owned by someone else).
	ErrForbidden = errors.New("forbidden")
	// ErrDuplicate maps to HTTP 409 on create (unique constraint hit).
	ErrDuplicate = errors.New("already exists")
)
