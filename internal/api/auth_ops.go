package api

import (
	"fmt"
	"net/http"

	"github.com/dsc/cli/internal/auth"
)

// Login authenticates the account and returns the session token. The
// caller decides whether and where to persist it.
func (c *Client) Login(account, password string) (*AuthResult, error) {
	var result AuthResult
	err := c.doJSON(http.MethodPost, "/api/v1/open/auth/login",
		auth.Anonymous(), AuthRequest{Account: account, Password: password}, &result)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		msg := result.Message
		if msg == "" {
			msg = "invalid credentials"
		}
		return nil, fmt.Errorf("login failed: %s", msg)
	}
	return &result, nil
}

// Logout invalidates the session on the server side.
func (c *Client) Logout(cred auth.Credential) error {
	return c.doJSON(http.MethodPost, "/api/v1/sec/auth/logout", cred, nil, nil)
}

// Register creates a new account, optionally joining an existing
// collective via an invitation key.
func (c *Client) Register(req RegisterRequest) (*BasicResult, error) {
	var result BasicResult
	err := c.doJSON(http.MethodPost, "/api/v1/open/signup/register",
		auth.Anonymous(), req, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GenInvite asks the server for a new invitation key. The password is
// the server's configured invite password, not a user password.
func (c *Client) GenInvite(password string) (*InviteResult, error) {
	var result InviteResult
	err := c.doJSON(http.MethodPost, "/api/v1/open/signup/newinvite",
		auth.Anonymous(), GenInviteRequest{Password: password}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Version fetches the server build info. Never authenticated.
func (c *Client) Version() (*VersionInfo, error) {
	var result VersionInfo
	err := c.doJSON(http.MethodGet, "/api/v1/open/info/version",
		auth.Anonymous(), nil, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
