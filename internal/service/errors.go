package service

import "errors"

// ErrNotFound covers both absent records and records owned by another user.
// The two cases are deliberately indistinguishable so that existence of
// foreign records never leaks.
var ErrNotFound = errors.New("record not found")

// ValidationError reports missing or malformed input. Handlers map it to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ConflictError reports an operation blocked by existing state, e.g. a
// duplicate category name or a category still referenced by expenses.
// Handlers map it to 400 with the message naming the obstruction.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func validationf(msg string) error { return &ValidationError{Msg: msg} }

func conflictf(msg string) error { return &ConflictError{Msg: msg} }
