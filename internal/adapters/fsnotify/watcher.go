// Package fsnotify implements the ports.Watcher interface using github.com/fsnotify/fsnotify.
// It watches the directories holding the requested table files, reports
// events only for those files, and debounces rapid events so a save made of
// several writes, or a replace through a rename, is reported once after the
// last of them.
package fsnotify

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/corey/planckt/internal/ports"
	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 50 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
	stopped bool
	mu      sync.Mutex
}

var _ ports.Watcher = (*Watcher)(nil)

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// Watch starts monitoring paths. onChange is called with the absolute path
// of each changed file.
func (w *Watcher) Watch(paths []string, onChange func(filePath string)) error {
	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	// Watch parent directories: an editor that saves by rename replaces the
	// inode, which would silently end a watch on the file itself.
	for dir := range dirs {
		if err := w.fw.Add(dir); err != nil {
			return err
		}
	}

	// Trailing-edge debounce: a file is reported once no event for it has
	// arrived for debounceInterval, so the callback sees the final write.
	pending := make(map[string]time.Time)
	timer := time.NewTimer(debounceInterval)
	timer.Stop()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer timer.Stop()
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				path := filepath.Clean(event.Name)
				if !targets[path] {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
					continue
				}
				pending[path] = time.Now().Add(debounceInterval)
				timer.Reset(nextDue(pending))

			case now := <-timer.C:
				for path, due := range pending {
					if !now.Before(due) {
						delete(pending, path)
						onChange(path)
					}
				}
				if len(pending) > 0 {
					timer.Reset(nextDue(pending))
				}

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// Errors are dropped; fsnotify keeps delivering events

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// nextDue returns the wait until the earliest pending deadline.
func nextDue(pending map[string]time.Time) time.Duration {
	var first time.Time
	for _, due := range pending {
		if first.IsZero() || due.Before(first) {
			first = due
		}
	}
	return max(time.Until(first), 0)
}

// Stop ends monitoring and releases all resources. It waits for the event
// goroutine to exit. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	err := w.fw.Close()
	w.wg.Wait()
	return err
}
