package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
)

// SessionHeader is the header Docspell expects the session token in.
const SessionHeader = "X-Docspell-Auth"

// ErrUnauthenticated is returned when a command needs a session but
// none is available.
var ErrUnauthenticated = errors.New("not logged in: run 'dsc login' first")

// Mode identifies which authentication mechanism a Credential carries.
type Mode int

const (
	// ModeNone means the request is sent anonymously.
	ModeNone Mode = iota
	// ModeSession attaches a session token header.
	ModeSession
	// ModeBasic attaches HTTP Basic credentials.
	ModeBasic
	// ModeHeader attaches a literal custom header.
	ModeHeader
)

func (m Mode) String() string {
	switch m {
	case ModeSession:
		return "session"
	case ModeBasic:
		return "basic"
	case ModeHeader:
		return "header"
	default:
		return "none"
	}
}

// Credential is a tagged authentication value. Exactly one mechanism is
// active per credential; use the constructors.
type Credential struct {
	mode  Mode
	token string
	pair  NameVal

	// fromStore records that the token was read from the session
	// store, so a server rejection should invalidate it.
	fromStore bool
}

// Anonymous returns a credential that leaves requests unchanged.
func Anonymous() Credential {
	return Credential{mode: ModeNone}
}

// SessionToken wraps an opaque session token obtained from login.
func SessionToken(token string) Credential {
	return Credential{mode: ModeSession, token: token}
}

// StoredSessionToken marks the token as coming from the session store,
// making it eligible for invalidation on a 401/403 response.
func StoredSessionToken(token string) Credential {
	return Credential{mode: ModeSession, token: token, fromStore: true}
}

// BasicAuth wraps username:password credentials for the integration
// endpoint.
func BasicAuth(pair NameVal) Credential {
	return Credential{mode: ModeBasic, pair: pair}
}

// HeaderAuth wraps a Header:Value credential for the integration
// endpoint.
func HeaderAuth(pair NameVal) Credential {
	return Credential{mode: ModeHeader, pair: pair}
}

// Mode reports which mechanism the credential carries.
func (c Credential) Mode() Mode { return c.mode }

// Token returns the session token, or "" for non-session credentials.
func (c Credential) Token() string { return c.token }

// FromStore reports whether the session token was loaded from the
// session store rather than passed in directly.
func (c Credential) FromStore() bool { return c.fromStore }

// Apply attaches the credential to req. Exactly one authentication
// mechanism is set; anonymous credentials leave the request untouched.
func (c Credential) Apply(req *http.Request) {
	switch c.mode {
	case ModeSession:
		slog.Debug("authenticating with session token", "token", redact(c.token))
		req.Header.Set(SessionHeader, c.token)
	case ModeBasic:
		slog.Debug("using integration endpoint with basic auth",
			"user", c.pair.Name, "password", redact(c.pair.Value))
		req.SetBasicAuth(c.pair.Name, c.pair.Value)
	case ModeHeader:
		slog.Debug("using integration endpoint with header",
			"name", c.pair.Name, "value", redact(c.pair.Value))
		req.Header.Set(c.pair.Name, c.pair.Value)
	}
}

// redact hides secret values in logs unless DSC_UNSAFE_DEBUG=1 is set.
func redact(secret string) string {
	if os.Getenv("DSC_UNSAFE_DEBUG") == "1" {
		return secret
	}
	return "***"
}
