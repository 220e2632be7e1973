package memory

import (
	"sync"

	"github.com/custodia-labs/exhibitfix/internal/core/domain"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is an in-memory implementation of driven.ConfigStore for testing.
type ConfigStore struct {
	mu  sync.RWMutex
	cfg domain.Config
}

// NewConfigStore creates a new in-memory config store holding cfg.
func NewConfigStore(cfg domain.Config) *ConfigStore {
	return &ConfigStore{cfg: cfg.WithDefaults()}
}

// Config returns the configuration.
func (s *ConfigStore) Config() domain.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update replaces the configuration.
func (s *ConfigStore) Update(cfg domain.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg.WithDefaults()
	return nil
}

// Load is a no-op for the in-memory store.
func (s *ConfigStore) Load() error {
	return nil
}

// Path returns an empty path; nothing is persisted.
func (s *ConfigStore) Path() string {
	return ""
}
