package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	apiclient "github.com/platebook/platebook/internal/client/api"
	"github.com/platebook/platebook/internal/client/storage"
	"github.com/platebook/platebook/internal/validation"
	"github.com/platebook/platebook/pkg/api"
)

// service implements Service over the HTTP client and the local auth storage.
type service struct {
	api    apiclient.ClientAPI
	store  storage.AuthStorage
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new session service.
func NewService(api apiclient.ClientAPI, store storage.AuthStorage, logger *slog.Logger) Service {
	return &service{
		api:    api,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (s *service) Register(ctx context.Context, username, password string) (*storage.AuthData, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.api.Register(ctx, api.RegisterRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("account registered", slog.String("username", username), slog.String("user_id", resp.UserID))

	// Log in right away so the user does not have to run two commands.
	return s.Login(ctx, username, password)
}

func (s *service) Login(ctx context.Context, username, password string) (*storage.AuthData, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}

	resp, err := s.api.Login(ctx, api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	auth := &storage.AuthData{
		Username:    resp.Username,
		UserID:      resp.UserID,
		AccessToken: resp.AccessToken,
		ExpiresAt:   s.now().Unix() + resp.ExpiresIn,
	}

	if err := s.store.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("logged in", slog.String("username", auth.Username))

	return auth, nil
}

func (s *service) Logout(ctx context.Context) error {
	err := s.store.DeleteAuth(ctx)
	if errors.Is(err, storage.ErrAuthNotFound) {
		return ErrNotAuthenticated
	}
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.logger.Info("logged out")

	return nil
}

func (s *service) Session(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.store.GetAuth(ctx)
	if errors.Is(err, storage.ErrAuthNotFound) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if auth.ExpiresAt <= s.now().Unix() {
		return nil, ErrSessionExpired
	}

	return auth, nil
}

func (s *service) AccessToken(ctx context.Context) (string, error) {
	auth, err := s.Session(ctx)
	if err != nil {
		return "", err
	}
	return auth.AccessToken, nil
}
