package storage

import "context"

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage defines the interface for storing the client session. It is
// the identity collaborator of the sync engine: the current user id
// attributes created records and the access token authenticates requests.
type AuthStorage interface {
	// SaveAuth stores the session data.
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves the stored session.
	// Returns ErrAuthNotFound if no session exists.
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes the stored session (logout).
	DeleteAuth(ctx context.Context) error
}

// AuthData represents the stored client session.
type AuthData struct {
	Username    string `json:"username"`
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // unix seconds
}
