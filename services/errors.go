package services

import "errors"

// Sentinel errors controllers map onto HTTP status codes.
var (
	ErrNotFound  = errors.New("record not found")
	ErrConflict  = errors.New("record already exists")
	ErrForbidden = errors.New("forbidden")
)
