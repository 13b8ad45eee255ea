// Package backend implements the outbound client for the remote marketplace
// backend. Only two endpoints are ever invoked: user login and user creation.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/palette/auction-gateway/internal/api/metrics"
	"github.com/palette/auction-gateway/internal/core/ports"
)

const (
	loginPath      = "/api/user/login"
	createUserPath = "/api/user"

	defaultRequestTimeout = 10 * time.Second
)

type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient builds a client for the backend at baseURL. A non-positive
// timeout falls back to the default; the source SPA had no timeout at all,
// but a server cannot leave request goroutines hanging on a stuck upstream.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the backend's acknowledgement envelope. The backend
// returns {status, statusCode, message} and no user data.
type loginResponse struct {
	Status     bool   `json:"status"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// Login posts the credentials. A non-2xx response or a body whose status
// field is not true reports (false, nil); only transport and decoding
// failures return an error.
func (c *Client) Login(ctx context.Context, username, password string) (bool, error) {
	resp, err := c.post(ctx, loginPath, loginRequest{Username: username, Password: password})
	if err != nil {
		return false, err
	}
	defer drain(resp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug().Int("status", resp.StatusCode).Msg("backend login refused")
		return false, nil
	}

	var body loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("decode login response: %w", err)
	}
	return body.Status, nil
}

type createUserRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// CreateUser posts the registration payload. Any non-2xx response is an
// error carrying the backend status code.
func (c *Client) CreateUser(ctx context.Context, input ports.CreateUserInput) error {
	resp, err := c.post(ctx, createUserPath, createUserRequest{
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
		Role:      input.Role,
	})
	if err != nil {
		return err
	}
	defer drain(resp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("backend create user: status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload any) (*http.Response, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("backend request %s: %w", path, err)
	}
	return resp, nil
}

// drain consumes and closes the body so the connection can be reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
