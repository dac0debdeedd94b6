package loader

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a single course data file and reports when it changes,
// so the menu can re-load without being asked. Events are debounced: editors
// that write a file in several syscalls produce one reload.
type Watcher struct {
	Path    string
	Changes <-chan string // Emits the file path on each settled change.

	changes chan string
	done    chan struct{}
	watcher *fsnotify.Watcher
	started bool
}

// NewWatcher creates a watcher for the given data file.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan string, 4)
	return &Watcher{
		Path:    path,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching. The parent directory is watched rather than the
// file itself: rename-and-replace saves would otherwise drop the watch.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}
	w.started = true
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel. Safe to call even when
// Start failed or was never called; the fsnotify handle is released either way.
func (w *Watcher) Stop() {
	w.watcher.Close()
	if w.started {
		<-w.done
	}
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	const debounce = 100 * time.Millisecond
	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	target := filepath.Clean(w.Path)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				if !pending.IsZero() {
					select {
					case w.changes <- w.Path:
					default:
					}
				}
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			if !pending.IsZero() && time.Since(pending) >= debounce {
				pending = time.Time{}
				select {
				case w.changes <- w.Path:
				default:
					// A reload is already queued; coalesce.
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next event still arrives.
		}
	}
}
