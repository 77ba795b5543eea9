package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestOptions_Defaults(t *testing.T) {
	o := Options{}.withDefaults()

	if o.Debounce != 500*time.Millisecond {
		t.Errorf("Debounce = %v, want 500ms", o.Debounce)
	}
	if o.RetryAttempts != 3 {
		t.Errorf("RetryAttempts = %d, want 3", o.RetryAttempts)
	}
	if o.RetryBackoff != time.Second {
		t.Errorf("RetryBackoff = %v, want 1s", o.RetryBackoff)
	}
}

func TestNew_RejectsMissingDirectory(t *testing.T) {
	_, err := New([]string{"/no/such/dir"}, Options{}, func(ctx context.Context, path string) error {
		return nil
	})
	if err == nil {
		t.Error("New() accepted a missing directory")
	}
}

func TestNew_RejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.pdf")
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := New([]string{path}, Options{}, func(ctx context.Context, path string) error {
		return nil
	})
	if err == nil {
		t.Error("New() accepted a plain file")
	}
}

func TestWatcher_UploadsStableFile(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var uploads []string
	uploaded := make(chan string, 4)
	w, err := New([]string{dir}, Options{Debounce: 50 * time.Millisecond},
		func(ctx context.Context, path string) error {
			mu.Lock()
			uploads = append(uploads, path)
			mu.Unlock()
			uploaded <- path
			return nil
		})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Two quick writes to the same file count as one upload.
	target := filepath.Join(dir, "scan.pdf")
	if err := os.WriteFile(target, []byte("first"), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if err := os.WriteFile(target, []byte("second"), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	select {
	case got := <-uploaded:
		if got != target {
			t.Errorf("uploaded %q, want %q", got, target)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("file was never uploaded")
	}

	// Give a second dispatch a chance to (wrongly) happen.
	time.Sleep(200 * time.Millisecond)
	mu.Lock()
	n := len(uploads)
	mu.Unlock()
	if n != 1 {
		t.Errorf("uploaded %d times, want 1", n)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() returned error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run() did not stop after cancel")
	}
}

func TestWatcher_RetriesFailedUpload(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	attempts := 0
	succeeded := make(chan struct{}, 1)
	w, err := New([]string{dir}, Options{
		Debounce:      20 * time.Millisecond,
		RetryAttempts: 3,
		RetryBackoff:  10 * time.Millisecond,
	}, func(ctx context.Context, path string) error {
		mu.Lock()
		attempts++
		n := attempts
		mu.Unlock()
		if n < 3 {
			return errors.New("server unavailable")
		}
		succeeded <- struct{}{}
		return nil
	})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	if err := os.WriteFile(filepath.Join(dir, "scan.pdf"), []byte("x"), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	select {
	case <-succeeded:
	case <-time.After(3 * time.Second):
		t.Fatal("upload never succeeded after retries")
	}
}

func TestWatcher_FiltersByGlob(t *testing.T) {
	dir := t.TempDir()

	uploaded := make(chan string, 4)
	w, err := New([]string{dir}, Options{
		Debounce: 20 * time.Millisecond,
		Matches:  "*.pdf",
	}, func(ctx context.Context, path string) error {
		uploaded <- path
		return nil
	})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "scan.pdf"), []byte("x"), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	select {
	case got := <-uploaded:
		if filepath.Base(got) != "scan.pdf" {
			t.Errorf("uploaded %q, want only scan.pdf", got)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("pdf file was never uploaded")
	}

	select {
	case got := <-uploaded:
		t.Errorf("unexpected upload of %q", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_DeleteAfterUpload(t *testing.T) {
	dir := t.TempDir()

	uploaded := make(chan string, 1)
	w, err := New([]string{dir}, Options{
		Debounce: 20 * time.Millisecond,
		Delete:   true,
	}, func(ctx context.Context, path string) error {
		uploaded <- path
		return nil
	})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	target := filepath.Join(dir, "scan.pdf")
	if err := os.WriteFile(target, []byte("x"), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	select {
	case <-uploaded:
	case <-time.After(3 * time.Second):
		t.Fatal("file was never uploaded")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(target); os.IsNotExist(err) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Error("uploaded file was not deleted")
}
