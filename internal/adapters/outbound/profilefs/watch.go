package profilefs

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch implements the optional C8 hot-reload trigger: it watches the
// profiles directory and folds bursts of filesystem events into a single
// Reload() call, debounced by the given duration. It blocks until ctx is
// cancelled or the watcher fails to start; callers run it in a goroutine.
//
// Debounce pattern grounded on the pack's mangle-file watcher: a single
// last-event timestamp checked by a periodic ticker, rather than reloading
// on every individual event.
func (l *Loader) Watch(ctx context.Context, debounce time.Duration, onReloadErr func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(l.dir); err != nil {
		return err
	}

	var mu sync.Mutex
	pendingSince := time.Time{}

	ticker := time.NewTicker(debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(strings.ToLower(event.Name), ".md") {
				continue
			}
			mu.Lock()
			pendingSince = time.Now()
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if onReloadErr != nil {
				onReloadErr(err)
			}

		case <-ticker.C:
			mu.Lock()
			due := !pendingSince.IsZero() && time.Since(pendingSince) >= debounce
			if due {
				pendingSince = time.Time{}
			}
			mu.Unlock()

			if due {
				if _, err := l.Reload(ctx); err != nil && onReloadErr != nil {
					onReloadErr(err)
				}
			}
		}
	}
}
