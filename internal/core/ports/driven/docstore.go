package driven

import "context"

// DocumentStore provides access to the documents of a single directory.
type DocumentStore interface {
	// Dir returns the directory the store serves.
	Dir() string

	// List returns the paths of all documents, sorted for determinism.
	// Subdirectories are not descended into.
	List(ctx context.Context) ([]string, error)

	// Read returns the full text of a document.
	Read(ctx context.Context, path string) (string, error)

	// Write replaces the text of a document. Implementations must not leave
	// a partially written document behind on failure.
	Write(ctx context.Context, path, content string) error

	// Lock takes the directory-wide batch lock.
	// Returns domain.ErrBatchInProgress if another run holds it.
	Lock(ctx context.Context) (unlock func() error, err error)
}
