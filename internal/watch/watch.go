// Package watch keeps directories under observation and uploads files
// once they have stopped changing. The loop runs until its context is
// cancelled; individual upload failures are retried with backoff and
// never terminate the loop.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// UploadFunc uploads one file. It is called after the file's debounce
// window elapsed, never concurrently for the same path.
type UploadFunc func(ctx context.Context, path string) error

// Options configure a Watcher.
type Options struct {
	// Recursive also watches subdirectories, including ones created
	// while watching.
	Recursive bool

	// Matches and NotMatches filter file names by glob before upload.
	Matches    string
	NotMatches string

	// Debounce is the quiet window a file must pass without changes
	// before it is uploaded. Defaults to 500ms.
	Debounce time.Duration

	// RetryAttempts is how often a failed upload is tried in total.
	// Defaults to 3.
	RetryAttempts int

	// RetryBackoff is the delay before the first retry; it doubles per
	// attempt. Defaults to 1s.
	RetryBackoff time.Duration

	// Delete removes a file after its successful upload.
	Delete bool
}

func (o Options) withDefaults() Options {
	if o.Debounce <= 0 {
		o.Debounce = 500 * time.Millisecond
	}
	if o.RetryAttempts <= 0 {
		o.RetryAttempts = 3
	}
	if o.RetryBackoff <= 0 {
		o.RetryBackoff = time.Second
	}
	return o
}

// Watcher watches directories and dispatches debounced uploads.
type Watcher struct {
	fsw      *fsnotify.Watcher
	opts     Options
	upload   UploadFunc
	debounce *Debouncer
	logger   *slog.Logger

	ctx context.Context
}

// New creates a watcher over the given directories.
func New(dirs []string, opts Options, upload UploadFunc) (*Watcher, error) {
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no directories to watch")
	}
	opts = opts.withDefaults()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		fsw:    fsw,
		opts:   opts,
		upload: upload,
		logger: slog.Default(),
	}
	w.debounce = NewDebouncer(opts.Debounce, w.dispatch)

	for _, dir := range dirs {
		if err := w.addDir(dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) addDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("cannot watch %s: not a directory", dir)
	}

	if !w.opts.Recursive {
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("cannot watch %s: %w", dir, err)
		}
		w.logger.Debug("watching directory", "path", dir)
		return nil
	}

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("cannot watch %s: %w", path, err)
		}
		w.logger.Debug("watching directory", "path", path)
		return nil
	})
}

// Run blocks processing events until ctx is cancelled. It always
// returns nil after a clean shutdown; only watcher breakage is an
// error.
func (w *Watcher) Run(ctx context.Context) error {
	w.ctx = ctx
	w.logger.Info("watching for new files", "debounce", w.opts.Debounce.String())

	defer func() {
		w.fsw.Close()
		w.debounce.Stop()
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("shutting down watch loop")
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("file watcher closed unexpectedly")
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("file watcher closed unexpectedly")
			}
			w.logger.Error("file watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		// Gone already; renames and editor temp files do this.
		return
	}

	if info.IsDir() {
		if w.opts.Recursive && event.Has(fsnotify.Create) {
			if err := w.fsw.Add(event.Name); err != nil {
				w.logger.Error("failed to watch new directory", "path", event.Name, "error", err)
			} else {
				w.logger.Debug("watching new directory", "path", event.Name)
			}
		}
		return
	}

	ok, err := w.wanted(filepath.Base(event.Name))
	if err != nil {
		w.logger.Error("bad file name filter", "error", err)
		return
	}
	if !ok {
		w.logger.Debug("ignoring file", "path", event.Name)
		return
	}

	w.debounce.File(event.Name)
}

func (w *Watcher) wanted(name string) (bool, error) {
	if w.opts.Matches != "" {
		ok, err := filepath.Match(w.opts.Matches, name)
		if err != nil || !ok {
			return false, err
		}
	}
	if w.opts.NotMatches != "" {
		ok, err := filepath.Match(w.opts.NotMatches, name)
		if err != nil {
			return false, err
		}
		if ok {
			return false, nil
		}
	}
	return true, nil
}

// dispatch uploads one stable file, retrying with exponential backoff.
// Failures are logged; the watch loop keeps running regardless.
func (w *Watcher) dispatch(path string) {
	ctx := w.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	backoff := w.opts.RetryBackoff
	var err error
	for attempt := 1; attempt <= w.opts.RetryAttempts; attempt++ {
		if err = w.upload(ctx, path); err == nil {
			w.logger.Info("uploaded file", "path", path)
			if w.opts.Delete {
				if rmErr := os.Remove(path); rmErr != nil {
					w.logger.Error("failed to delete uploaded file", "path", path, "error", rmErr)
				}
			}
			return
		}
		if ctx.Err() != nil {
			return
		}
		w.logger.Warn("upload failed",
			"path", path,
			"attempt", attempt,
			"error", err,
		)
		if attempt == w.opts.RetryAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	w.logger.Error("giving up on file", "path", path, "error", err)
}
