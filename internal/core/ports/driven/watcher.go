package driven

import "context"

// DocumentWatcher reports documents that were created or modified.
type DocumentWatcher interface {
	// Watch sends the path of each changed document until ctx is cancelled.
	// The returned channel is closed when watching stops.
	Watch(ctx context.Context) (<-chan string, error)

	// Close releases watcher resources.
	Close() error
}
