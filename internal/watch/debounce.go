package watch

import (
	"sync"
	"time"
)

// Debouncer coalesces file events: a path is dispatched once it has
// been quiet for the configured window, measured from its last event.
// A path whose dispatch is still running is not dispatched again;
// events seen meanwhile re-arm the timer instead.
type Debouncer struct {
	quiet    time.Duration
	dispatch func(path string)

	mu       sync.Mutex
	timers   map[string]*time.Timer
	inflight map[string]bool
	stopped  bool
	wg       sync.WaitGroup
}

// NewDebouncer creates a debouncer calling dispatch for each stable
// path. dispatch runs on its own goroutine, one per path at a time.
func NewDebouncer(quiet time.Duration, dispatch func(path string)) *Debouncer {
	return &Debouncer{
		quiet:    quiet,
		dispatch: dispatch,
		timers:   make(map[string]*time.Timer),
		inflight: make(map[string]bool),
	}
}

// File records an event for path, starting or re-arming its timer.
func (d *Debouncer) File(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if timer, ok := d.timers[path]; ok {
		timer.Reset(d.quiet)
		return
	}
	d.timers[path] = time.AfterFunc(d.quiet, func() {
		d.fire(path)
	})
}

func (d *Debouncer) fire(path string) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	if d.inflight[path] {
		// An upload for this file is still running; try again after
		// another quiet window.
		d.timers[path].Reset(d.quiet)
		d.mu.Unlock()
		return
	}
	delete(d.timers, path)
	d.inflight[path] = true
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		defer func() {
			d.mu.Lock()
			delete(d.inflight, path)
			d.mu.Unlock()
		}()
		d.dispatch(path)
	}()
}

// Stop cancels pending timers and waits for running dispatches.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	for path, timer := range d.timers {
		timer.Stop()
		delete(d.timers, path)
	}
	d.mu.Unlock()
	d.wg.Wait()
}
