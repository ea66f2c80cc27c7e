package assets

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pixelforge/figure"
)

// debounceDelay coalesces the burst of events an editor produces while
// saving a file into a single notification.
const debounceDelay = 100 * time.Millisecond

// Watcher watches an asset directory and reports changed PNG files, so
// hosts can reload art without restarting. Events are debounced per path.
type Watcher struct {
	watcher *fsnotify.Watcher
	dir     string
	changes chan string
	stopCh  chan struct{}

	mu       sync.Mutex
	debounce map[string]*time.Timer
	stopped  bool
}

// NewWatcher creates a watcher over the given asset directory. Call
// Changes to receive notifications and Stop when done.
func NewWatcher(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  fsw,
		dir:      dir,
		changes:  make(chan string, 16),
		stopCh:   make(chan struct{}),
		debounce: make(map[string]*time.Timer),
	}
	go w.run()
	return w, nil
}

// Changes returns the channel on which changed .png file paths are
// delivered. The channel is closed when the watcher stops.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Stop shuts the watcher down. Pending debounced events are dropped. Stop
// is safe to call more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	for path, timer := range w.debounce {
		timer.Stop()
		delete(w.debounce, path)
	}
	// Closing under the same lock emit sends under keeps a racing timer
	// from writing to a closed channel.
	close(w.stopCh)
	close(w.changes)
	w.mu.Unlock()

	return w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			figure.Logger().Warn("asset watcher error", "error", err)

		case <-w.stopCh:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") || !strings.EqualFold(filepath.Ext(base), ".png") {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if timer, ok := w.debounce[event.Name]; ok {
		timer.Stop()
	}
	path := event.Name
	w.debounce[path] = time.AfterFunc(debounceDelay, func() {
		w.emit(path)
	})
}

func (w *Watcher) emit(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.debounce, path)
	if w.stopped {
		return
	}

	select {
	case w.changes <- path:
	default:
		// A slow consumer loses coalesced events rather than blocking the
		// timer goroutine.
		figure.Logger().Warn("asset change dropped", "path", path)
	}
}
