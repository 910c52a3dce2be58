package core

import "errors"

// Common errors.
var (
	ErrNotFound = errors.New("note not found")
	ErrExists   = errors.New("note already exists")
	ErrEmptyID  = errors.New("note ID cannot be empty")
)
