// Package api is a typed client for the Docspell REST API. Every
// outbound request is built through one authorization step so that
// exactly one authentication mechanism is applied per request.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dsc/cli/internal/auth"
)

// AdminSecretHeader authenticates requests to the admin endpoints.
const AdminSecretHeader = "Docspell-Admin-Secret"

// Client issues requests against one Docspell server.
type Client struct {
	baseURL string
	http    *http.Client

	// store, when set, is used to invalidate a stored session after
	// the server rejects it, so the next invocation prompts for login
	// instead of failing repeatedly.
	store auth.SessionStore
}

// New creates a client for the given base URL. store may be nil when
// session invalidation is not wanted (e.g. anonymous commands).
func New(baseURL string, store auth.SessionStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		store:   store,
	}
}

// BaseURL returns the normalized server base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ServerError is a non-2xx response. The body is carried along since
// Docspell returns its reason there.
type ServerError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *ServerError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("server error: %s", e.Status)
	}
	return fmt.Sprintf("server error: %s: %s", e.Status, body)
}

// doJSON sends a request with an optional JSON body and decodes the
// JSON response into out (which may be nil). A 401/403 response while
// using a stored session clears that session.
func (c *Client) doJSON(method, path string, cred auth.Credential, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.send(req, cred)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// send applies the credential, performs the round trip and turns
// non-2xx responses into errors.
func (c *Client) send(req *http.Request, cred auth.Credential) (*http.Response, error) {
	cred.Apply(req)
	slog.Debug("sending request",
		"method", req.Method,
		"url", req.URL.String(),
		"auth", cred.Mode().String(),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 8192))
	resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		if cred.FromStore() && c.store != nil {
			slog.Info("server rejected the stored session, clearing it")
			_ = c.store.Clear(c.baseURL)
		}
		return nil, fmt.Errorf("authentication failed (%s): run 'dsc login' to re-authenticate", resp.Status)
	}

	return nil, &ServerError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       string(data),
	}
}
