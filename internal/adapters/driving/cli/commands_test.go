package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/exhibitfix/internal/core/domain"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driven"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "exhibitfix", rootCmd.Use)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
}

func TestResolveConfig_OpenError(t *testing.T) {
	setupCLITest(t, &mockNormaliser{})
	SetDependencies(
		func(string) (driven.ConfigStore, error) { return nil, errors.New("bad toml") },
		newNormaliser,
	)

	_, err := resolveConfig(nil, "")

	assert.EqualError(t, err, "bad toml")
}

func TestResolveConfig_Overrides(t *testing.T) {
	h := setupCLITest(t, &mockNormaliser{})
	cfg := domain.DefaultConfig()
	cfg.Dir = "/srv/exhibits"
	cfg.Variant = "categories"
	require.NoError(t, h.config.Update(cfg))

	got, err := resolveConfig(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "/srv/exhibits", got.Dir)
	assert.Equal(t, "categories", got.Variant)

	got, err = resolveConfig([]string{"/tmp/other"}, "languages")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other", got.Dir)
	assert.Equal(t, "languages", got.Variant)
}

func TestResolveConfig_PassesConfigPath(t *testing.T) {
	h := setupCLITest(t, &mockNormaliser{result: &domain.BatchResult{}})

	_, err := execute(t, "run", "--config", "/etc/exhibitfix.toml", "--stats", "none")

	require.NoError(t, err)
	assert.Equal(t, "/etc/exhibitfix.toml", h.gotPath)
}

func TestConfigCmd_Show(t *testing.T) {
	setupCLITest(t, &mockNormaliser{})

	out, err := execute(t, "config")

	require.NoError(t, err)
	assert.Contains(t, out, `dir = './exhibits'`)
	assert.Contains(t, out, `variant = 'final'`)
	assert.Contains(t, out, "[categories.mapping]")
	assert.Contains(t, out, `Historical = 'Software & Computing'`)
	assert.NotContains(t, out, "# ", "the memory store has no path")
}

func TestConfigCmd_Init(t *testing.T) {
	h := setupCLITest(t, &mockNormaliser{})
	cfg := domain.DefaultConfig()
	cfg.Variant = "categories"
	require.NoError(t, h.config.Update(cfg))

	out, err := execute(t, "config", "init")

	require.NoError(t, err)
	assert.Contains(t, out, "Wrote ")
	assert.Equal(t, "categories", h.config.Config().Variant)
}

func TestConfigCmd_NotConfigured(t *testing.T) {
	setupCLITest(t, &mockNormaliser{})
	SetDependencies(nil, nil)

	_, err := execute(t, "config")

	assert.ErrorIs(t, err, errNotConfigured)
}

func TestStatsCmd(t *testing.T) {
	n := &mockNormaliser{
		distribution: map[string][]domain.Count{
			domain.FieldLanguage: {{Value: "C", Count: 4}, {Value: "Assembly", Count: 2}},
		},
	}
	h := setupCLITest(t, n)

	out, err := execute(t, "stats", "/srv/exhibits", "--field", "language")

	require.NoError(t, err)
	assert.Equal(t, "/srv/exhibits", h.gotCfg.Dir)
	assert.Equal(t, []string{"language"}, n.gotFields)
	assert.Contains(t, out, "Final language distribution:")
	assert.Contains(t, out, "  C: 4 exhibits")
	assert.Contains(t, out, "  Assembly: 2 exhibits")
	assert.NotContains(t, out, "not approved")
}

func TestStatsCmd_Empty(t *testing.T) {
	setupCLITest(t, &mockNormaliser{})

	out, err := execute(t, "stats")

	require.NoError(t, err)
	assert.Contains(t, out, "Final category distribution:")
	assert.Contains(t, out, "(none)")
}

func TestStatsCmd_Error(t *testing.T) {
	setupCLITest(t, &mockNormaliser{distErr: domain.ErrNotFound})

	_, err := execute(t, "stats")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVariantsCmd(t *testing.T) {
	out, err := execute(t, "variants")

	require.NoError(t, err)
	assert.Contains(t, out, "* final")
	assert.Contains(t, out, "categories")
	assert.Contains(t, out, "split-languages")
	assert.Contains(t, out, "rules: language-first")
}

func TestWatchCmd(t *testing.T) {
	n := &mockNormaliser{
		watchResults: []domain.FileResult{
			{Path: "/srv/exhibits/agc.md", Changed: true, Written: true},
			{Path: "/srv/exhibits/unix.md"},
		},
	}
	h := setupCLITest(t, n)

	out, err := execute(t, "watch", "/srv/exhibits", "--variant", "categories", "--dry-run")

	require.NoError(t, err)
	assert.True(t, h.gotWatch)
	assert.True(t, h.cleaned)
	assert.Equal(t, "categories", h.gotCfg.Variant)
	assert.True(t, n.gotOpts.DryRun)
	assert.Contains(t, out, "Watching /srv/exhibits (variant categories)")
	assert.Contains(t, out, "Updated: agc.md")
	assert.Contains(t, out, "No changes needed: unix.md")
}

func TestVersionCmd(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
	assert.Equal(t, "Print the version number", versionCmd.Short)

	originalVersion := version
	SetVersion("1.2.3")
	defer func() { version = originalVersion }()

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "exhibitfix version 1.2.3")
}

func TestSetVersion_IgnoresEmpty(t *testing.T) {
	originalVersion := version
	defer func() { version = originalVersion }()

	SetVersion("")

	assert.Equal(t, originalVersion, version)
}
