package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrRecordNotFound indicates that the record was not found
	ErrRecordNotFound = errors.New("record not found")

	// ErrVersionMismatch indicates that a patch precondition failed: the
	// expected version no longer matches the stored one
	ErrVersionMismatch = errors.New("version mismatch")
)
