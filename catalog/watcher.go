package catalog

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/kakapo/kakapo/logging"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is how long the watcher waits for filesystem events to
// settle before reloading.
const DefaultDebounce = 150 * time.Millisecond

// Reloaded is delivered after each debounced reload.
type Reloaded struct {
	Entities []Entity
	Err      error
}

// Watcher reloads a catalog when files under its directory roots change.
type Watcher struct {
	catalog  *Catalog
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *logrus.Entry

	events    chan Reloaded
	done      chan struct{}
	closeOnce sync.Once
}

// NewWatcher watches every directory under the catalog's roots and starts
// the event loop. It stops when ctx is cancelled or Close is called.
func NewWatcher(ctx context.Context, c *Catalog) (*Watcher, error) {
	return newWatcher(ctx, c, DefaultDebounce)
}

func newWatcher(ctx context.Context, c *Catalog, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		catalog:  c,
		watcher:  fw,
		debounce: debounce,
		logger:   logging.NewLogger("catalog-watcher"),
		events:   make(chan Reloaded, 1),
		done:     make(chan struct{}),
	}

	for _, root := range c.Roots() {
		if err := w.addTree(root); err != nil {
			fw.Close()
			return nil, err
		}
	}

	go w.run(ctx)
	return w, nil
}

// Events returns the reload channel. It is closed when the watcher stops.
func (w *Watcher) Events() <-chan Reloaded {
	return w.events
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

// addTree watches dir and its subdirectories; fsnotify is not recursive.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return err
		}
		w.logger.Debugf("Watching %s", path)
		return nil
	})
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.events)
	defer w.Close()

	// A fresh timer per burst; stopped timers never fire.
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.logger.WithError(err).Warnf("Failed to watch %s", event.Name)
					}
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.WithError(err).Warn("Watcher error")

		case <-fire:
			fire = nil
			entities, err := w.catalog.Load(ctx)
			select {
			case w.events <- Reloaded{Entities: entities, Err: err}:
			case <-ctx.Done():
				return
			case <-w.done:
				return
			}
		}
	}
}
