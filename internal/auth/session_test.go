package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store := &FileStore{Dir: t.TempDir()}

	if err := store.Save("http://localhost:7880", "tok123", 0); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	token, ok := store.Load("http://localhost:7880")
	if !ok {
		t.Fatal("Load() reported no session after Save()")
	}
	if token != "tok123" {
		t.Errorf("Load() = %q, want %q", token, "tok123")
	}
}

func TestFileStore_LoadNeverSaved(t *testing.T) {
	store := &FileStore{Dir: t.TempDir()}

	if token, ok := store.Load("http://nowhere.example.com"); ok {
		t.Errorf("Load() for never-saved URL returned %q, want absence", token)
	}
}

func TestFileStore_Clear(t *testing.T) {
	store := &FileStore{Dir: t.TempDir()}

	if err := store.Save("http://localhost:7880", "tok123", 0); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	if err := store.Clear("http://localhost:7880"); err != nil {
		t.Fatalf("Clear() returned error: %v", err)
	}
	if _, ok := store.Load("http://localhost:7880"); ok {
		t.Error("Load() found a session after Clear()")
	}

	// Clearing again must be idempotent.
	if err := store.Clear("http://localhost:7880"); err != nil {
		t.Errorf("Clear() of absent session returned error: %v", err)
	}
}

func TestFileStore_ServersDoNotInterfere(t *testing.T) {
	store := &FileStore{Dir: t.TempDir()}

	if err := store.Save("http://one.example.com", "tok-one", 0); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	if err := store.Save("http://two.example.com", "tok-two", 0); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	if err := store.Clear("http://one.example.com"); err != nil {
		t.Fatalf("Clear() returned error: %v", err)
	}

	if _, ok := store.Load("http://one.example.com"); ok {
		t.Error("session for cleared server still present")
	}
	token, ok := store.Load("http://two.example.com")
	if !ok || token != "tok-two" {
		t.Errorf("Load(two) = %q, %v; want %q, true", token, ok, "tok-two")
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	store := &FileStore{Dir: t.TempDir()}

	if err := store.Save("http://localhost:7880", "old", 0); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	if err := store.Save("http://localhost:7880", "new", 0); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	token, _ := store.Load("http://localhost:7880")
	if token != "new" {
		t.Errorf("Load() = %q, want %q", token, "new")
	}
}

func TestFileStore_CorruptFileIsAbsence(t *testing.T) {
	dir := t.TempDir()
	store := &FileStore{Dir: dir}

	if err := store.Save("http://localhost:7880", "tok123", 0); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one session file, found %d", len(entries))
	}
	path := filepath.Join(dir, entries[0].Name())
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	if token, ok := store.Load("http://localhost:7880"); ok {
		t.Errorf("Load() of corrupt session returned %q, want absence", token)
	}
}

func TestFileStore_ExpiredSessionIsAbsence(t *testing.T) {
	store := &FileStore{Dir: t.TempDir()}

	// A 1ms lifetime is elapsed by the time Load runs.
	if err := store.Save("http://localhost:7880", "tok123", 1); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if token, ok := store.Load("http://localhost:7880"); ok {
		t.Errorf("Load() of expired session returned %q, want absence", token)
	}
}

func TestFileStore_TrailingSlashSameServer(t *testing.T) {
	store := &FileStore{Dir: t.TempDir()}

	if err := store.Save("http://localhost:7880/", "tok123", 0); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	token, ok := store.Load("http://localhost:7880")
	if !ok || token != "tok123" {
		t.Errorf("Load() without trailing slash = %q, %v; want stored token", token, ok)
	}
}

func TestSession_IsExpired(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		want    bool
	}{
		{
			name:    "no lifetime recorded",
			session: Session{CreatedAt: time.Now().Add(-24 * time.Hour)},
			want:    false,
		},
		{
			name:    "within lifetime",
			session: Session{CreatedAt: time.Now(), ValidMs: 300000},
			want:    false,
		},
		{
			name:    "past lifetime",
			session: Session{CreatedAt: time.Now().Add(-time.Hour), ValidMs: 1000},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.IsExpired(); got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}
