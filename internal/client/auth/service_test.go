package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/platebook/platebook/internal/client/api"
	"github.com/platebook/platebook/internal/client/storage/boltdb"
	"github.com/platebook/platebook/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *boltdb.Storage {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "auth-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func tokenResponse() *api.TokenResponse {
	return &api.TokenResponse{
		AccessToken: "token-abc",
		UserID:      "user-1",
		Username:    "alice",
		ExpiresIn:   900,
	}
}

func TestService_Login(t *testing.T) {
	apiMock := &apiclient.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
			assert.Equal(t, "alice", req.Username)
			assert.Equal(t, "correct-horse-battery", req.Password)
			return tokenResponse(), nil
		},
	}

	svc := NewService(apiMock, newTestStore(t), testLogger())

	auth, err := svc.Login(context.Background(), "alice", "correct-horse-battery")
	require.NoError(t, err)
	assert.Equal(t, "alice", auth.Username)
	assert.Equal(t, "user-1", auth.UserID)
	assert.Equal(t, "token-abc", auth.AccessToken)
	assert.Greater(t, auth.ExpiresAt, time.Now().Unix())

	// The session survives a reload through the storage.
	token, err := svc.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
}

func TestService_Login_RejectsInvalidUsername(t *testing.T) {
	apiMock := &apiclient.ClientAPIMock{}
	svc := NewService(apiMock, newTestStore(t), testLogger())

	_, err := svc.Login(context.Background(), "ab", "whatever-password")
	require.Error(t, err)
	assert.Empty(t, apiMock.LoginCalls(), "validation fails before the network")
}

func TestService_Register_LogsInAfterward(t *testing.T) {
	apiMock := &apiclient.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
			return &api.RegisterResponse{UserID: "user-1"}, nil
		},
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
			return tokenResponse(), nil
		},
	}

	svc := NewService(apiMock, newTestStore(t), testLogger())

	auth, err := svc.Register(context.Background(), "alice", "correct-horse-battery")
	require.NoError(t, err)
	assert.Equal(t, "token-abc", auth.AccessToken)
	assert.Len(t, apiMock.RegisterCalls(), 1)
	assert.Len(t, apiMock.LoginCalls(), 1)
}

func TestService_Register_PropagatesServerError(t *testing.T) {
	apiMock := &apiclient.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
			return nil, errors.New("username already taken")
		},
	}

	svc := NewService(apiMock, newTestStore(t), testLogger())

	_, err := svc.Register(context.Background(), "alice", "correct-horse-battery")
	require.Error(t, err)
	assert.Empty(t, apiMock.LoginCalls(), "no login after a failed registration")
}

func TestService_Session_NotAuthenticated(t *testing.T) {
	svc := NewService(&apiclient.ClientAPIMock{}, newTestStore(t), testLogger())

	_, err := svc.Session(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestService_Session_Expired(t *testing.T) {
	apiMock := &apiclient.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
			return tokenResponse(), nil
		},
	}

	svc := NewService(apiMock, newTestStore(t), testLogger()).(*service)

	_, err := svc.Login(context.Background(), "alice", "correct-horse-battery")
	require.NoError(t, err)

	// Move the clock past the token expiry.
	svc.now = func() time.Time { return time.Now().Add(time.Hour) }

	_, err = svc.Session(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestService_Logout(t *testing.T) {
	apiMock := &apiclient.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
			return tokenResponse(), nil
		},
	}

	svc := NewService(apiMock, newTestStore(t), testLogger())

	_, err := svc.Login(context.Background(), "alice", "correct-horse-battery")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background()))

	_, err = svc.Session(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	assert.ErrorIs(t, svc.Logout(context.Background()), ErrNotAuthenticated)
}
