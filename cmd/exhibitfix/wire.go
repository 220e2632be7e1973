package main

import (
	"fmt"

	"github.com/custodia-labs/exhibitfix/internal/adapters/driven/config/file"
	"github.com/custodia-labs/exhibitfix/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/exhibitfix/internal/core/domain"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driven"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driving"
	"github.com/custodia-labs/exhibitfix/internal/core/services"
	"github.com/custodia-labs/exhibitfix/internal/rules"
)

// openConfig opens the TOML config file. A missing file yields built-in defaults.
func openConfig(path string) (driven.ConfigStore, error) {
	store, err := file.NewConfigStore(path)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// newNormaliser assembles the document store, rule pipeline and service for cfg.
func newNormaliser(cfg domain.Config, watch bool) (driving.BatchNormaliser, func() error, error) {
	cfg = cfg.WithDefaults()

	store, err := filesystem.NewDocumentStore(cfg.Dir, cfg.Extension)
	if err != nil {
		return nil, nil, err
	}

	pipeline, err := rules.DefaultRegistry().BuildVariant(cfg.Variant, cfg.Categories)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() error { return nil }
	var opts []services.Option
	if watch {
		w, err := filesystem.NewWatcher(store)
		if err != nil {
			return nil, nil, fmt.Errorf("watch %s: %w", cfg.Dir, err)
		}
		opts = append(opts, services.WithWatcher(w))
		cleanup = w.Close
	}

	return services.NewBatchNormaliser(store, pipeline, cfg.Variant, opts...), cleanup, nil
}
