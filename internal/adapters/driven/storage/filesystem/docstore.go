package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/gosimple/slug"

	"github.com/custodia-labs/exhibitfix/internal/core/domain"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore reads and writes the documents of one directory.
type DocumentStore struct {
	dir      string
	ext      string
	lockPath string
}

// NewDocumentStore creates a store for dir. Files whose names end in ext are
// documents. If ext is empty, domain.DefaultExtension is used.
func NewDocumentStore(dir, ext string) (*DocumentStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("directory is empty: %w", domain.ErrInvalidInput)
	}
	if ext == "" {
		ext = domain.DefaultExtension
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}

	return &DocumentStore{
		dir:      abs,
		ext:      ext,
		lockPath: lockPathFor(abs),
	}, nil
}

// lockPathFor places the batch lock in the temp directory so the document
// directory only ever holds documents.
func lockPathFor(absDir string) string {
	return filepath.Join(os.TempDir(), "exhibitfix-"+slug.Make(absDir)+".lock")
}

// Dir returns the absolute directory the store serves.
func (s *DocumentStore) Dir() string {
	return s.dir
}

// Extension returns the document extension.
func (s *DocumentStore) Extension() string {
	return s.ext
}

// IsDocument reports whether path names a document of this store by
// location and extension. It does not touch the filesystem.
func (s *DocumentStore) IsDocument(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, s.ext) {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return filepath.Dir(abs) == s.dir
}

// List returns the document paths in the directory, sorted by name.
func (s *DocumentStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("list %s: %w", s.dir, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("list %s: %w", s.dir, err)
	}

	// os.ReadDir returns entries sorted by filename.
	var paths []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if s.IsDocument(path) {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// Read returns the text of a document.
func (s *DocumentStore) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w: %w", path, domain.ErrUnreadable, err)
	}
	return string(data), nil
}

// Write atomically replaces the text of a document, keeping its permissions.
func (s *DocumentStore) Write(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := writeAtomic(path, []byte(content), mode); err != nil {
		return fmt.Errorf("write %s: %w: %w", path, domain.ErrUnwritable, err)
	}
	return nil
}

// writeAtomic writes data to a temporary sibling of path and renames it into place.
func writeAtomic(path string, data []byte, mode fs.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, mode); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Lock takes the directory's batch lock without blocking.
func (s *DocumentStore) Lock(ctx context.Context) (func() error, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fl := flock.New(s.lockPath)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", s.lockPath, err)
	}
	if !locked {
		return nil, fmt.Errorf("lock %s: %w", s.dir, domain.ErrBatchInProgress)
	}
	return fl.Unlock, nil
}
