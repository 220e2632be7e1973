package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/exhibitfix/internal/core/domain"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driven"
)

// DefaultConfigFile is looked up in the working directory when no path is given.
const DefaultConfigFile = "exhibitfix.toml"

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	cfg      domain.Config
}

// NewConfigStore creates a new TOML-based config store.
// If path is empty, defaults to exhibitfix.toml in the working directory.
// A missing file is not an error; the built-in defaults apply.
func NewConfigStore(path string) (*ConfigStore, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	s := &ConfigStore{
		filePath: path,
		cfg:      domain.DefaultConfig(),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Config returns the loaded configuration with defaults applied.
func (s *ConfigStore) Config() domain.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update replaces the configuration and persists it immediately.
func (s *ConfigStore) Update(cfg domain.Config) error {
	cfg = cfg.WithDefaults()
	if err := cfg.Categories.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg = cfg
	return s.save()
}

// save writes configuration to the TOML file (caller must hold lock).
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(s.cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads configuration from the TOML file.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// No config file - built-in defaults apply
			s.cfg = domain.DefaultConfig()
			return nil
		}
		return fmt.Errorf("read config %s: %w", s.filePath, err)
	}

	var loaded domain.Config
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parse config %s: %w: %w", s.filePath, domain.ErrInvalidInput, err)
	}

	loaded = loaded.WithDefaults()
	if err := loaded.Categories.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", s.filePath, err)
	}

	s.cfg = loaded
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
