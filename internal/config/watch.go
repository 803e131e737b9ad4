package config

import (
	"maps"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow is how long a file must stay quiet before its change is
// reported; editors often write a file several times per save.
const debounceWindow = 100 * time.Millisecond

// Watcher reports changes to one config file.
type Watcher struct {
	watcher *fsnotify.Watcher
	match   func(path string) bool
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchFile watches the directory holding path and reports only that file.
func WatchFile(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	match := func(name string) bool {
		return filepath.Clean(name) == abs
	}
	return newWatcher(match, filepath.Dir(abs))
}

func newWatcher(match func(string) bool, dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		match:   match,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Events and Errors are closed once it returns.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.Errors)
	defer close(w.Events)

	pending := make(map[string]struct{})
	timer := time.NewTimer(debounceWindow)
	timer.Stop()
	defer timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !w.match(event.Name) {
				continue
			}
			// Every event pushes the report back; only the settled file is read
			pending[event.Name] = struct{}{}
			timer.Reset(debounceWindow)
			fire = timer.C

		case <-fire:
			fire = nil
			names := slices.Sorted(maps.Keys(pending))
			clear(pending)
			for _, name := range names {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
