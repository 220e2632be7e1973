package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/exhibitfix/internal/core/domain"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// Failures can be injected per path for testing.
type DocumentStore struct {
	mu        sync.RWMutex
	dir       string
	documents map[string]string
	writes    map[string]int
	readErrs  map[string]error
	writeErrs map[string]error
	locked    bool
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore(dir string) *DocumentStore {
	return &DocumentStore{
		dir:       dir,
		documents: make(map[string]string),
		writes:    make(map[string]int),
		readErrs:  make(map[string]error),
		writeErrs: make(map[string]error),
	}
}

// Put stores a document without counting it as a write.
func (s *DocumentStore) Put(path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[path] = content
}

// Get returns the stored text of a document.
func (s *DocumentStore) Get(path string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.documents[path]
	return content, ok
}

// Writes returns how many times path was written.
func (s *DocumentStore) Writes(path string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes[path]
}

// FailRead makes reads of path return err.
func (s *DocumentStore) FailRead(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readErrs[path] = err
}

// FailWrite makes writes of path return err.
func (s *DocumentStore) FailWrite(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErrs[path] = err
}

// Dir returns the directory the store serves.
func (s *DocumentStore) Dir() string {
	return s.dir
}

// List returns all document paths, sorted.
func (s *DocumentStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	paths := make([]string, 0, len(s.documents))
	for p := range s.documents {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths, nil
}

// Read returns the text of a document.
func (s *DocumentStore) Read(_ context.Context, path string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.readErrs[path]; err != nil {
		return "", fmt.Errorf("read %s: %w: %w", path, domain.ErrUnreadable, err)
	}
	content, ok := s.documents[path]
	if !ok {
		return "", fmt.Errorf("read %s: %w", path, domain.ErrNotFound)
	}
	return content, nil
}

// Write replaces the text of a document.
func (s *DocumentStore) Write(_ context.Context, path, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeErrs[path]; err != nil {
		return fmt.Errorf("write %s: %w: %w", path, domain.ErrUnwritable, err)
	}
	s.documents[path] = content
	s.writes[path]++
	return nil
}

// Lock takes the batch lock.
func (s *DocumentStore) Lock(_ context.Context) (func() error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locked {
		return nil, domain.ErrBatchInProgress
	}
	s.locked = true
	return func() error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.locked = false
		return nil
	}, nil
}
