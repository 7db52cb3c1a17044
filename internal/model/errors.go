package model

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrBadRequest = errors.New("bad request")

	// ErrAlreadyExists marks an idempotent reuse: the requested conversation
	// already exists and is returned alongside this error. It is a signal,
	// not a failure.
	ErrAlreadyExists = errors.New("already exists")
)
