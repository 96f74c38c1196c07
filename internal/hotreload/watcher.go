// Package hotreload reports edits to a shader file so the render loop can
// rebuild its program. The watcher never touches the GL context.
package hotreload

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

type Watcher struct {
	watcher *fsnotify.Watcher
	target  string
	changes chan string
	done    chan struct{}
	wg      sync.WaitGroup
	logger  *slog.Logger
}

// New watches path. The parent directory is watched, as editors often
// replace a file instead of writing it in place.
func New(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("hotreload: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("hotreload: %w", err)
	}
	if err := fw.Add(filepath.Dir(target)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("hotreload: watch %s: %w", filepath.Dir(target), err)
	}

	w := &Watcher{
		watcher: fw,
		target:  target,
		// one pending change is enough, the loop reloads the whole file
		changes: make(chan string, 1),
		done:    make(chan struct{}),
		logger:  logger,
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Changes delivers the watched path after each batch of edits.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Poll reports whether a change is pending, without blocking.
func (w *Watcher) Poll() (string, bool) {
	select {
	case path := <-w.changes:
		return path, true
	default:
		return "", false
	}
}

func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("shader file changed", "path", event.Name, "op", event.Op.String())
			select {
			case w.changes <- w.target:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("shader watcher error", "err", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != w.target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
