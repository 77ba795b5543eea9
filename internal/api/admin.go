package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dsc/cli/internal/auth"
)

// doAdmin sends a request authenticated with the admin secret header.
// Admin endpoints bypass both sessions and integration credentials.
func (c *Client) doAdmin(path, secret string, body, out any) error {
	if secret == "" {
		return fmt.Errorf("no admin secret: set it via --admin-secret or the config file")
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(AdminSecretHeader, secret)

	resp, err := c.send(req, auth.Anonymous())
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

// ResetPassword generates a new password for the given account.
func (c *Client) ResetPassword(secret, account string) (*ResetPasswordResult, error) {
	var result ResetPasswordResult
	err := c.doAdmin("/api/v1/admin/user/resetPassword", secret,
		ResetPasswordRequest{Account: account}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RecreateIndex drops and rebuilds the full-text index.
func (c *Client) RecreateIndex(secret string) (*BasicResult, error) {
	var result BasicResult
	if err := c.doAdmin("/api/v1/admin/fts/reIndexAll", secret, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GeneratePreviews regenerates preview images of all attachments.
func (c *Client) GeneratePreviews(secret string) (*BasicResult, error) {
	var result BasicResult
	if err := c.doAdmin("/api/v1/admin/attachments/generatePreviews", secret, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
