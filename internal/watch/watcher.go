// Package watch reports when entries appear in or vanish from the form and
// instance roots so an open list can be rebuilt.
package watch

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"formkeep/internal/errors"
	"formkeep/internal/log"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the roots must stay quiet before a Change is
// delivered.
const DefaultDebounce = 250 * time.Millisecond

// Change is one coalesced burst of filesystem activity.
type Change struct {
	Paths     []string
	Timestamp time.Time
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithIgnore drops events whose base name matches.
func WithIgnore(ignored func(name string) bool) Option {
	return func(w *Watcher) {
		w.ignored = ignored
	}
}

// WithDebounce sets the quiet period. Zero delivers every event on its own.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// Watcher monitors the roots using fsnotify. Only the roots themselves are
// watched; changes inside an instance folder do not alter the list.
type Watcher struct {
	roots []string

	changes  chan Change
	stopChan chan struct{}
	done     chan struct{}

	fsWatcher *fsnotify.Watcher
	ignored   func(name string) bool
	debounce  time.Duration

	mutex   sync.RWMutex
	running bool
}

// New creates a watcher. Call AddRoot and then Start.
func New(opts ...Option) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		changes:   make(chan Change, 1),
		fsWatcher: fsWatcher,
		debounce:  DefaultDebounce,
		ignored:   func(string) bool { return false },
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// AddRoot starts watching dir.
func (w *Watcher) AddRoot(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewFileError("root does not exist", dir, errors.FileNotFound, err)
		}
		return errors.NewFileError("cannot access root", dir, errors.FileAccessDenied, err)
	}
	if !info.IsDir() {
		return errors.NewFileError("root is not a directory", dir, errors.InvalidPath, nil)
	}

	if err := w.fsWatcher.Add(dir); err != nil {
		return errors.NewFileError("failed to watch root", dir, errors.FileAccessDenied, err)
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()
	for _, existing := range w.roots {
		if existing == dir {
			return nil
		}
	}
	w.roots = append(w.roots, dir)
	log.LogWithFields(log.F("directory", dir)).Info("Watching root")
	return nil
}

// Changes delivers one Change per quiet period. It is closed by Stop.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Start runs the event loop in the background.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.running {
		return errors.New("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.done = make(chan struct{})

	go w.loop()
	log.Debug("watcher started")
	return nil
}

func (w *Watcher) loop() {
	defer close(w.done)

	var (
		pending []string
		timer   *time.Timer
		fire    <-chan time.Time
	)
	flush := func() {
		if len(pending) == 0 {
			return
		}
		w.deliver(Change{Paths: pending, Timestamp: time.Now()})
		pending = nil
	}

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				flush()
				return
			}
			if !w.relevant(event) {
				continue
			}
			log.Debugf("root change %s %s", event.Op, event.Name)
			pending = append(pending, event.Name)

			if w.debounce <= 0 {
				flush()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			flush()

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// relevant keeps events that can change the listing. Writes and chmods
// leave names alone.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	return !w.ignored(filepath.Base(event.Name))
}

// deliver never blocks. A full channel already holds an undelivered Change,
// which triggers the same rebuild, so its paths are merged.
func (w *Watcher) deliver(c Change) {
	select {
	case w.changes <- c:
		return
	default:
	}
	select {
	case old := <-w.changes:
		c.Paths = append(old.Paths, c.Paths...)
	default:
	}
	select {
	case w.changes <- c:
	default:
		log.LogWithFields(log.F("paths", len(c.Paths))).Warn("Change channel is full, dropped change")
	}
}

// Stop halts the loop and closes Changes.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if !w.running {
		return
	}

	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
	<-w.done
	w.running = false
	close(w.changes)
	log.Debug("watcher stopped")
}

// IsRunning reports whether the loop is active.
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// Roots returns the watched directories.
func (w *Watcher) Roots() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	out := make([]string, len(w.roots))
	copy(out, w.roots)
	return out
}

// WatchRoots builds a started watcher over forms and instances. A root that
// does not exist yet is skipped with a warning.
func WatchRoots(forms, instances string, opts ...Option) (*Watcher, error) {
	w, err := New(opts...)
	if err != nil {
		return nil, err
	}
	for _, root := range []string{forms, instances} {
		err := w.AddRoot(root)
		switch {
		case err == nil:
		case errors.Is(err, errors.ErrFileNotFound):
			log.LogWithFields(log.F("directory", root)).Warn("Root missing, not watched")
		default:
			log.LogWithError(err).Error("Root not watched")
		}
	}
	if err := w.Start(); err != nil {
		w.fsWatcher.Close()
		return nil, err
	}
	return w, nil
}
