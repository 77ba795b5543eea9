package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Session is the locally persisted login state for one server.
type Session struct {
	// ServerURL is the base URL the token was issued for.
	ServerURL string `json:"server_url"`

	// Token is the opaque session token from the login response.
	Token string `json:"token"`

	// CreatedAt is when the token was stored.
	CreatedAt time.Time `json:"created_at"`

	// ValidMs is the token lifetime reported by the server, in
	// milliseconds. Zero means unknown; the token is then kept until
	// the server rejects it.
	ValidMs int64 `json:"valid_ms,omitempty"`
}

// IsExpired returns true if the token lifetime is known and elapsed.
func (s *Session) IsExpired() bool {
	if s.ValidMs <= 0 {
		return false
	}
	return time.Now().After(s.CreatedAt.Add(time.Duration(s.ValidMs) * time.Millisecond))
}

// SessionStore persists at most one session token per server URL.
// Sessions for different server URLs do not interfere.
type SessionStore interface {
	// Save overwrites any prior session for the server URL.
	Save(serverURL, token string, validMs int64) error

	// Load returns the stored token, or false if none is recorded.
	// Unreadable or corrupt state is treated as absence; the caller
	// re-authenticates.
	Load(serverURL string) (string, bool)

	// Clear removes the stored session. Clearing an absent session is
	// not an error.
	Clear(serverURL string) error
}

// FileStore keeps one JSON session file per server URL under Dir.
type FileStore struct {
	Dir string
}

// DefaultFileStore returns a store rooted at the OS config directory
// (e.g. ~/.config/dsc/sessions).
func DefaultFileStore() (*FileStore, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate config directory: %w", err)
	}
	return &FileStore{Dir: filepath.Join(base, "dsc", "sessions")}, nil
}

// path derives the session file name from the server URL. Hashing keeps
// the name filesystem-safe and distinct per URL.
func (f *FileStore) path(serverURL string) string {
	sum := sha256.Sum256([]byte(strings.TrimRight(serverURL, "/")))
	return filepath.Join(f.Dir, hex.EncodeToString(sum[:8])+".json")
}

// Save writes the session with restrictive permissions. The write goes
// through a temp file and rename so a failed write never leaves a
// corrupt session behind.
func (f *FileStore) Save(serverURL, token string, validMs int64) error {
	if err := os.MkdirAll(f.Dir, 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(Session{
		ServerURL: serverURL,
		Token:     token,
		CreatedAt: time.Now(),
		ValidMs:   validMs,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	path := f.path(serverURL)
	tmp, err := os.CreateTemp(f.Dir, "session-*")
	if err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write session: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Load returns the stored token for the server URL. Missing, corrupt or
// expired sessions all read as absent; expired ones are removed.
func (f *FileStore) Load(serverURL string) (string, bool) {
	data, err := os.ReadFile(f.path(serverURL))
	if err != nil {
		return "", false
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return "", false
	}
	if s.Token == "" {
		return "", false
	}
	if s.IsExpired() {
		_ = f.Clear(serverURL)
		return "", false
	}
	return s.Token, true
}

// Clear removes the session file, if any.
func (f *FileStore) Clear(serverURL string) error {
	err := os.Remove(f.path(serverURL))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

// MemStore is an in-memory SessionStore for tests.
type MemStore struct {
	sessions map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{sessions: make(map[string]string)}
}

func (m *MemStore) Save(serverURL, token string, validMs int64) error {
	m.sessions[serverURL] = token
	return nil
}

func (m *MemStore) Load(serverURL string) (string, bool) {
	tok, ok := m.sessions[serverURL]
	return tok, ok
}

func (m *MemStore) Clear(serverURL string) error {
	delete(m.sessions, serverURL)
	return nil
}
