package models

import "errors"

// Failure classes surfaced by the service layer. Handlers map these to HTTP
// status codes; anything not listed here is treated as a storage error.
var (
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrNotFound           = errors.New("record not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrInvalidTrack       = errors.New("track does not exist")
	ErrInvalidLRN         = errors.New("LRN must be exactly 12 digits")
	ErrInvalidStatus      = errors.New("invalid enrollment status")
	ErrTrackInUse         = errors.New("track is in use by students")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
