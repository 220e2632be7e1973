package driven

import "github.com/custodia-labs/exhibitfix/internal/core/domain"

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files).
type ConfigStore interface {
	// Config returns the loaded configuration with defaults applied.
	Config() domain.Config

	// Update replaces the configuration and persists it immediately.
	Update(cfg domain.Config) error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
