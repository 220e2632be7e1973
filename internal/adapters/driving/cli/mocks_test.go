package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/custodia-labs/exhibitfix/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/exhibitfix/internal/core/domain"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driven"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driving"
)

// mockNormaliser implements driving.BatchNormaliser for testing.
type mockNormaliser struct {
	dir     string
	variant string

	result  *domain.BatchResult
	runErr  error
	gotOpts driving.RunOptions

	distribution map[string][]domain.Count
	distErr      error
	gotFields    []string

	watchResults []domain.FileResult
}

func (m *mockNormaliser) Run(_ context.Context, opts driving.RunOptions) (*domain.BatchResult, error) {
	m.gotOpts = opts
	return m.result, m.runErr
}

func (m *mockNormaliser) NormaliseFile(_ context.Context, path string, _ driving.RunOptions) (*domain.FileResult, error) {
	return &domain.FileResult{Path: path}, nil
}

func (m *mockNormaliser) Distribution(_ context.Context, field string) ([]domain.Count, error) {
	m.gotFields = append(m.gotFields, field)
	return m.distribution[field], m.distErr
}

func (m *mockNormaliser) Watch(_ context.Context, opts driving.RunOptions, report func(*domain.FileResult)) error {
	m.gotOpts = opts
	for i := range m.watchResults {
		report(&m.watchResults[i])
	}
	return nil
}

func (m *mockNormaliser) Variant() string { return m.variant }
func (m *mockNormaliser) Dir() string     { return m.dir }

// harness wires a mock normaliser into the CLI and captures its inputs.
type harness struct {
	normaliser *mockNormaliser
	config     *memory.ConfigStore
	gotPath    string
	gotCfg     domain.Config
	gotWatch   bool
	cleaned    bool
}

func setupCLITest(t *testing.T, n *mockNormaliser) *harness {
	t.Helper()

	h := &harness{normaliser: n, config: memory.NewConfigStore(domain.DefaultConfig())}

	oldConfigs, oldFactory := openConfig, newNormaliser
	SetDependencies(
		func(path string) (driven.ConfigStore, error) {
			h.gotPath = path
			return h.config, nil
		},
		func(cfg domain.Config, watch bool) (driving.BatchNormaliser, func() error, error) {
			h.gotCfg = cfg
			h.gotWatch = watch
			if n.variant == "" {
				n.variant = cfg.Variant
			}
			if n.dir == "" {
				n.dir = cfg.Dir
			}
			return n, func() error { h.cleaned = true; return nil }, nil
		},
	)

	t.Cleanup(func() {
		SetDependencies(oldConfigs, oldFactory)
		resetFlags()
		rootCmd.SetArgs(nil)
	})
	return h
}

// resetFlags restores flag variables, which persist across Execute calls.
func resetFlags() {
	verbose = false
	configPath = ""
	runVariant, runDryRun, runCheck, runFailFast, runStats = "", false, false, false, ""
	statsFieldFlag = domain.FieldCategory
	watchVariant, watchDryRun = "", false
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}
