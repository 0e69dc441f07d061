package app

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// FileWatcher tracks whether open files still exist on disk. It watches
// the directory of each file so that deletes, renames and re-creates are
// all observed.
type FileWatcher struct {
	mu sync.RWMutex

	watcher *fsnotify.Watcher

	// exists caches the last known state of each watched file.
	exists map[string]bool
	// dirs counts watched files per directory.
	dirs map[string]int

	log logrus.FieldLogger

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup

	// changed, if set, is called after a watched file's state changes.
	changed func(path string, exists bool)
}

// NewFileWatcher starts a watcher. Close must be called to release it.
func NewFileWatcher(log logrus.FieldLogger) (*FileWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		l, _ := NewLogger("info", nil)
		log = l
	}

	w := &FileWatcher{
		watcher: fsw,
		exists:  make(map[string]bool),
		dirs:    make(map[string]int),
		log:     log.WithField("component", "watcher"),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// OnChange registers fn to be called from the watcher goroutine whenever
// a watched file appears or disappears.
func (w *FileWatcher) OnChange(fn func(path string, exists bool)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.changed = fn
}

// Watch starts tracking path. The file itself need not exist yet, but its
// directory must.
func (w *FileWatcher) Watch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if _, ok := w.exists[absPath]; ok {
		w.exists[absPath] = statExists(absPath)
		return nil
	}

	dir := filepath.Dir(absPath)
	if w.dirs[dir] == 0 {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
	}
	w.dirs[dir]++
	w.exists[absPath] = statExists(absPath)
	return nil
}

// Unwatch stops tracking path.
func (w *FileWatcher) Unwatch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if _, ok := w.exists[absPath]; !ok {
		return nil
	}
	delete(w.exists, absPath)

	dir := filepath.Dir(absPath)
	w.dirs[dir]--
	if w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		return w.watcher.Remove(dir)
	}
	return nil
}

// Exists reports whether path exists. Watched paths are answered from the
// cache; others are checked on disk.
func (w *FileWatcher) Exists(path string) bool {
	if path == "" {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	w.mu.RLock()
	exists, ok := w.exists[absPath]
	w.mu.RUnlock()

	if ok {
		return exists
	}
	return statExists(absPath)
}

// Close stops the watcher.
func (w *FileWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.closedWg.Wait()
	return err
}

func (w *FileWatcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("watch error")
		}
	}
}

func (w *FileWatcher) handleEvent(ev fsnotify.Event) {
	path := filepath.Clean(ev.Name)

	w.mu.Lock()
	old, ok := w.exists[path]
	if !ok {
		w.mu.Unlock()
		return
	}

	var exists bool
	switch {
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		// A rename may replace the file in one step; trust the disk.
		exists = statExists(path)
	case ev.Has(fsnotify.Create), ev.Has(fsnotify.Write):
		exists = true
	default:
		exists = old
	}
	w.exists[path] = exists
	changed := w.changed
	w.mu.Unlock()

	if exists != old {
		w.log.WithFields(logrus.Fields{"path": path, "exists": exists}).Debug("file state changed")
		if changed != nil {
			changed(path, exists)
		}
	}
}
