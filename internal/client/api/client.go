// Package api implements the HTTP transport client for the Platebook server.
// It surfaces transport and status-code outcomes as typed errors without
// interpreting them; the sync engine decides what to do with each class.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/platebook/platebook/internal/models"
	"github.com/platebook/platebook/internal/validation"
	"github.com/platebook/platebook/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines the transport operations consumed by the sync engine and
// the CLI.
type ClientAPI interface {
	// Register creates a new account.
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// Login authenticates and returns an access token.
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// List fetches all records of a collection, or only those updated at or
	// after since when it is non-nil.
	List(ctx context.Context, token string, collection models.Collection, since *time.Time) ([]api.Record, error)

	// Get fetches a single record by id.
	Get(ctx context.Context, token string, collection models.Collection, id string) (*api.Record, error)

	// Create issues a full create; the server assigns id, version 1 and
	// timestamps.
	Create(ctx context.Context, token string, collection models.Collection, fields map[string]any) (*api.Record, error)

	// Patch issues a partial update carrying only changed fields plus the
	// expected version as an optimistic-lock precondition. A version
	// mismatch surfaces as *ConflictError.
	Patch(ctx context.Context, token string, collection models.Collection, id string, delta map[string]any, expectedVersion int64) (*api.Record, error)
}

// Client is the HTTP implementation of ClientAPI.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register creates a new account
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login authenticates and returns an access token
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// List fetches records of a collection, optionally since a timestamp
func (c *Client) List(ctx context.Context, token string, collection models.Collection, since *time.Time) ([]api.Record, error) {
	path := fmt.Sprintf("/api/v1/%s", collection)
	if since != nil {
		path += "?since=" + url.QueryEscape(validation.FormatSyncTimestamp(*since))
	}

	var resp api.ListResponse
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("list request failed: %w", err)
	}
	return resp.Records, nil
}

// Get fetches a single record
func (c *Client) Get(ctx context.Context, token string, collection models.Collection, id string) (*api.Record, error) {
	var resp api.Record
	path := fmt.Sprintf("/api/v1/%s/%s", collection, id)
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("get request failed: %w", err)
	}
	return &resp, nil
}

// Create issues a full create
func (c *Client) Create(ctx context.Context, token string, collection models.Collection, fields map[string]any) (*api.Record, error) {
	var resp api.Record
	path := fmt.Sprintf("/api/v1/%s", collection)
	req := api.CreateRequest{Fields: fields}
	if err := c.doRequest(ctx, http.MethodPost, path, token, req, &resp); err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	return &resp, nil
}

// Patch issues a partial update with an optimistic-lock precondition
func (c *Client) Patch(ctx context.Context, token string, collection models.Collection, id string, delta map[string]any, expectedVersion int64) (*api.Record, error) {
	var resp api.Record
	path := fmt.Sprintf("/api/v1/%s/%s", collection, id)
	req := api.PatchRequest{Fields: delta, ExpectedVersion: expectedVersion}
	if err := c.doRequest(ctx, http.MethodPatch, path, token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// doRequest performs an HTTP request and maps the outcome onto the typed
// error taxonomy.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// fallthrough to decode below
	case resp.StatusCode == http.StatusConflict:
		var conflict api.ConflictResponse
		if err := json.Unmarshal(respBody, &conflict); err != nil {
			return &ConflictError{Message: string(respBody)}
		}
		return &ConflictError{Current: conflict.Current, Message: conflict.Message}
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var errResp api.ErrorResponse
		msg := string(respBody)
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			msg = errResp.Error
			if errResp.Message != "" {
				msg += ": " + errResp.Message
			}
		}
		return &ValidationError{StatusCode: resp.StatusCode, Message: msg}
	default:
		return &TransportError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("server error: %s", string(respBody)),
		}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
