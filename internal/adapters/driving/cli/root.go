// Package cli implements the exhibitfix command line.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/exhibitfix/internal/core/domain"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driven"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driving"
	"github.com/custodia-labs/exhibitfix/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// ConfigStoreFactory opens the config store at path, or at the default
// location when path is empty.
type ConfigStoreFactory func(path string) (driven.ConfigStore, error)

// NormaliserFactory builds a normaliser for cfg. When watch is true the
// normaliser supports Watch. The returned cleanup releases resources.
type NormaliserFactory func(cfg domain.Config, watch bool) (driving.BatchNormaliser, func() error, error)

var (
	openConfig    ConfigStoreFactory
	newNormaliser NormaliserFactory

	verbose    bool
	configPath string
)

var errNotConfigured = errors.New("normaliser not configured")

var rootCmd = &cobra.Command{
	Use:   "exhibitfix",
	Short: "Normalise exhibit metadata fields",
	Long: `exhibitfix normalises the metadata fields of a directory of exhibit
documents. Each document holds fields introduced by "# <name>" marker lines;
exhibitfix remaps legacy categories, strips dates from titles, reduces when
fields to a year and splits compound languages, then rewrites changed files
in place.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./exhibitfix.toml)")
}

// SetDependencies wires the config store and normaliser factories.
func SetDependencies(configs ConfigStoreFactory, factory NormaliserFactory) {
	openConfig = configs
	newNormaliser = factory
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// resolveConfig loads configuration and applies the directory argument and
// variant flag on top of it.
func resolveConfig(args []string, variant string) (domain.Config, error) {
	if openConfig == nil || newNormaliser == nil {
		return domain.Config{}, errNotConfigured
	}

	store, err := openConfig(configPath)
	if err != nil {
		return domain.Config{}, err
	}
	cfg := store.Config()
	if len(args) > 0 && args[0] != "" {
		cfg.Dir = args[0]
	}
	if variant != "" {
		cfg.Variant = variant
	}
	return cfg, nil
}

func closeQuietly(cleanup func() error) {
	if cleanup == nil {
		return
	}
	if err := cleanup(); err != nil {
		logger.Warn("cleanup: %v", err)
	}
}
