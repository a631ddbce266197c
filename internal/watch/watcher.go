// Package watch re-runs a callback when any of a set of files changes.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/ngdoctags/internal/foundation/errors"
	"git.home.luguber.info/inful/ngdoctags/internal/logfields"
)

// Watcher monitors files and triggers a debounced callback on change. Parent
// directories are watched rather than the files themselves so that editors
// replacing files through rename are still seen.
type Watcher struct {
	files    map[string]struct{}
	dirs     map[string]struct{}
	debounce time.Duration
	onChange func(context.Context)
	watcher  *fsnotify.Watcher
}

// New creates a watcher over paths. onChange runs on the Run goroutine,
// so a rebuild is never started while another is still in progress.
func New(paths []string, debounce time.Duration, onChange func(context.Context)) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.ValidationError("no paths to watch").Build()
	}

	w := &Watcher{
		files:    make(map[string]struct{}, len(paths)),
		dirs:     make(map[string]struct{}),
		debounce: debounce,
		onChange: onChange,
	}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve watch path").
				WithContext("path", p).
				Build()
		}
		w.files[abs] = struct{}{}
		w.dirs[filepath.Dir(abs)] = struct{}{}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to create file watcher").Build()
	}
	for dir := range w.dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to watch directory").
				WithContext("path", dir).
				Build()
		}
	}
	w.watcher = fw
	return w, nil
}

// Run processes events until ctx is done. The watcher is closed on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("Watched file changed", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.onChange(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if _, ok := w.files[filepath.Clean(event.Name)]; !ok {
		return false
	}
	if event.Op.Has(fsnotify.Remove) {
		slog.Warn("Watched file removed", "file", event.Name)
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}
