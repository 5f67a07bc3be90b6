// Package api talks to the remote roster service. Every operation absorbs
// transport and server failures into its return value (empty slice, absent
// user, false) and logs the cause; no error crosses the package boundary.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/10Draken01/Docker-Front/internal/log"
	"github.com/10Draken01/Docker-Front/internal/model"
)

// UserAPI is the roster service as seen by the application shell.
type UserAPI interface {
	ListUsers(ctx context.Context) []model.User
	GetUser(ctx context.Context, id string) (model.User, bool)
	CreateUser(ctx context.Context, data model.UserCreationData) (model.User, bool)
	UpdateUser(ctx context.Context, id string, patch model.UserPatch) (model.User, bool)
	DeleteUser(ctx context.Context, id string) bool
}

// Compile-time interface check.
var _ UserAPI = (*Client)(nil)

// errUnsuccessful marks an envelope that did not carry a positive result.
var errUnsuccessful = errors.New("api: unsuccessful response")

// Client implements UserAPI over HTTP/JSON.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithHTTPClient replaces the underlying *http.Client entirely.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger receiving failure diagnostics.
func WithLogger(l *log.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a roster API client for baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.NewNopLogger()
	}
	return c
}

// ListUsers fetches every user, or an empty slice on failure.
func (c *Client) ListUsers(ctx context.Context) []model.User {
	var env model.Envelope[[]model.User]
	if err := c.do(ctx, http.MethodGet, "/users", nil, &env); err != nil {
		c.fail(ctx, "list users", "", err, env.Error)
		return []model.User{}
	}
	if !env.Ok() {
		c.fail(ctx, "list users", "", errUnsuccessful, env.Error)
		return []model.User{}
	}
	return *env.Data
}

// GetUser fetches one user. The second result is false on any failure,
// including not-found.
func (c *Client) GetUser(ctx context.Context, id string) (model.User, bool) {
	return c.single(ctx, "get user", http.MethodGet, "/users/"+url.PathEscape(id), id, nil)
}

// CreateUser submits a new user and returns the server-assigned record.
func (c *Client) CreateUser(ctx context.Context, data model.UserCreationData) (model.User, bool) {
	return c.single(ctx, "create user", http.MethodPost, "/users", "", data)
}

// UpdateUser submits a partial or full update and returns the updated record.
func (c *Client) UpdateUser(ctx context.Context, id string, patch model.UserPatch) (model.User, bool) {
	return c.single(ctx, "update user", http.MethodPut, "/users/"+url.PathEscape(id), id, patch)
}

// DeleteUser requests deletion and reports whether the server confirmed it.
func (c *Client) DeleteUser(ctx context.Context, id string) bool {
	var env model.Envelope[json.RawMessage]
	if err := c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, &env); err != nil {
		c.fail(ctx, "delete user", id, err, env.Error)
		return false
	}
	if !env.Success {
		c.fail(ctx, "delete user", id, errUnsuccessful, env.Error)
		return false
	}
	return true
}

func (c *Client) single(ctx context.Context, op, method, path, id string, body any) (model.User, bool) {
	var env model.Envelope[model.User]
	if err := c.do(ctx, method, path, body, &env); err != nil {
		c.fail(ctx, op, id, err, env.Error)
		return model.User{}, false
	}
	if !env.Ok() {
		c.fail(ctx, op, id, errUnsuccessful, env.Error)
		return model.User{}, false
	}
	return *env.Data, true
}

// do performs one request and decodes the envelope into out. The envelope
// is decoded even for non-2xx statuses so the server's error string can be
// logged.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read response: %w", err)
	}

	decodeErr := json.Unmarshal(respBody, out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("api: %s %s: HTTP %d", method, path, resp.StatusCode)
	}
	if decodeErr != nil {
		return fmt.Errorf("api: decode response: %w", decodeErr)
	}
	return nil
}

func (c *Client) fail(ctx context.Context, op, id string, err error, serverMsg string) {
	fields := log.Fields{"operation": op, "error": err}
	if id != "" {
		fields["id"] = id
	}
	if serverMsg != "" {
		fields["serverError"] = serverMsg
	}
	c.logger.Error(ctx, "Roster API call failed", fields)
}
