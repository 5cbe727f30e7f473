package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/acacls/internal/pattern"
	"github.com/bethropolis/acacls/internal/source"
	"github.com/bethropolis/acacls/internal/visibility"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		source.GlobalHiddenVar, source.GlobalIgnoreVar,
		"ACACLS_LS_COMMAND", "ACACLS_MODE", "ACACLS_ENGINE", "ACACLS_LOG_LEVEL", "ACACLS_DEFAULT_LEVEL",
		"ACACLS_DRY_RUN", "ACACLS_DRY_RUN_FORMAT", "ACACLS_SHOW_SKIPPED",
		"ACACLS_HIDDEN_FILE", "ACACLS_IGNORE_FILE",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", cfg.LsCommand)
	assert.Equal(t, ModePatterns, cfg.Mode)
	assert.Equal(t, pattern.EngineGlob, cfg.Engine)
	assert.Equal(t, visibility.HideHidden, cfg.DefaultLevel)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, ".hidden", cfg.HiddenFile)
	assert.Equal(t, ".ignore", cfg.IgnoreFile)
	assert.Equal(t, "plain", cfg.DryRunFormat)
	assert.False(t, cfg.DryRun)

	_, ok := cfg.LookupPath(source.GlobalHiddenVar)
	assert.False(t, ok)
}

func TestLoadFrom_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv(source.GlobalHiddenVar, "/etc/acacls/hidden")
	t.Setenv(source.GlobalIgnoreVar, "/etc/acacls/ignore")
	t.Setenv("ACACLS_LS_COMMAND", "ls")
	t.Setenv("ACACLS_MODE", "entries")
	t.Setenv("ACACLS_ENGINE", "gitignore")
	t.Setenv("ACACLS_DEFAULT_LEVEL", "hide-ignored")
	t.Setenv("ACACLS_DRY_RUN", "true")
	t.Setenv("ACACLS_DRY_RUN_FORMAT", "json")

	cfg, err := LoadFrom(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "ls", cfg.LsCommand)
	assert.Equal(t, ModeEntries, cfg.Mode)
	assert.Equal(t, pattern.EngineGitignore, cfg.Engine)
	assert.Equal(t, visibility.HideIgnored, cfg.DefaultLevel)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, "json", cfg.DryRunFormat)

	path, ok := cfg.LookupPath(source.GlobalHiddenVar)
	assert.True(t, ok)
	assert.Equal(t, "/etc/acacls/hidden", path)
	path, ok = cfg.LookupPath(source.GlobalIgnoreVar)
	assert.True(t, ok)
	assert.Equal(t, "/etc/acacls/ignore", path)

	_, ok = cfg.LookupPath("HOME")
	assert.False(t, ok)
}

func TestLoadFrom_ConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	yaml := "mode: entries\nshow_skipped: true\nhidden_file: .lshidden\nglobal_ignore: /srv/ignore\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "acacls.yaml"), []byte(yaml), 0o644))

	cfg, err := LoadFrom(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, ModeEntries, cfg.Mode)
	assert.True(t, cfg.ShowSkipped)
	assert.Equal(t, ".lshidden", cfg.HiddenFile)
	assert.Equal(t, "/srv/ignore", cfg.GlobalIgnore)
}

func TestLoadFrom_EnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "acacls.yaml"), []byte("mode: entries\n"), 0o644))
	t.Setenv("ACACLS_MODE", "patterns")

	cfg, err := LoadFrom(viper.New(), dir)
	require.NoError(t, err)
	assert.Equal(t, ModePatterns, cfg.Mode)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := map[string]string{
		"ACACLS_MODE":           "tree",
		"ACACLS_ENGINE":         "regex",
		"ACACLS_DRY_RUN_FORMAT": "xml",
		"ACACLS_DEFAULT_LEVEL":  "everything",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := LoadFrom(viper.New(), "")
			assert.Error(t, err)
		})
	}
}
