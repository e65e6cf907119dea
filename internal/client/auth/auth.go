package auth

import (
	"context"
	"errors"

	"github.com/platebook/platebook/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

var (
	// ErrNotAuthenticated indicates that no local session exists.
	ErrNotAuthenticated = errors.New("not authenticated, run login first")

	// ErrSessionExpired indicates that the stored access token has expired.
	ErrSessionExpired = errors.New("session expired, run login again")
)

// Service manages the client session: register and login against the server,
// persist the issued token locally, and hand it to commands that need it.
type Service interface {
	// Register creates an account and logs in, storing the session.
	Register(ctx context.Context, username, password string) (*storage.AuthData, error)

	// Login authenticates and stores the session.
	Login(ctx context.Context, username, password string) (*storage.AuthData, error)

	// Logout removes the stored session.
	Logout(ctx context.Context) error

	// Session returns the stored session.
	// Returns ErrNotAuthenticated if none exists, ErrSessionExpired if the
	// token is past its expiry.
	Session(ctx context.Context) (*storage.AuthData, error)

	// AccessToken returns the token of a valid session.
	AccessToken(ctx context.Context) (string, error)
}
