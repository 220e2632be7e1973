package filesystem

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/exhibitfix/internal/core/ports/driven"
	"github.com/custodia-labs/exhibitfix/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.DocumentWatcher = (*Watcher)(nil)

// Watcher reports documents of a store that are created or written.
type Watcher struct {
	store   *DocumentStore
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher over the store's directory.
func NewWatcher(store *DocumentStore) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(store.Dir()); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", store.Dir(), err)
	}
	return &Watcher{store: store, watcher: w}, nil
}

// Watch sends the path of each created or written document until ctx is done.
func (w *Watcher) Watch(ctx context.Context) (<-chan string, error) {
	out := make(chan string)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}
				if !w.store.IsDocument(event.Name) {
					continue
				}
				logger.Debug("watch: %s %s", event.Op, event.Name)
				select {
				case out <- event.Name:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watch: %v", err)
			}
		}
	}()

	return out, nil
}

// Close stops the underlying watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
