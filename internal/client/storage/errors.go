package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrRecordNotFound indicates that the record was not found
	ErrRecordNotFound = errors.New("record not found")

	// ErrCheckpointNotFound indicates that a collection has never been pulled
	ErrCheckpointNotFound = errors.New("checkpoint not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
