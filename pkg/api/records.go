// Package api defines the wire types shared by the Platebook client and
// server.
package api

import "time"

// Record is the wire representation of a synchronized document. Version and
// both timestamps are server-assigned.
type Record struct {
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	ID        string         `json:"id"`
	CreatedBy string         `json:"created_by"`
	Fields    map[string]any `json:"fields"`
	Version   int64          `json:"version"`
}

// ListResponse is returned by GET /api/v1/{collection}.
type ListResponse struct {
	Records []Record `json:"records"`
}

// CreateRequest is the body of POST /api/v1/{collection}.
type CreateRequest struct {
	Fields map[string]any `json:"fields"`
}

// PatchRequest is the body of PATCH /api/v1/{collection}/{id}. Fields carries
// only the changed fields (nested objects hold only changed leaves, nil
// clears a field); ExpectedVersion is the optimistic-lock precondition.
type PatchRequest struct {
	Fields          map[string]any `json:"fields"`
	ExpectedVersion int64          `json:"expected_version"`
}

// ConflictResponse is the body of a 409: the precondition failed and Current
// is the record as the server has it now.
type ConflictResponse struct {
	Message string  `json:"message"`
	Current *Record `json:"current,omitempty"`
}

// ErrorResponse is the generic error body for non-2xx replies.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
