package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovshanmuradov/mirror-dash/internal/state"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, state.DefaultExecutorFile, cfg.ExecutorFile)
	assert.Equal(t, state.DefaultWatcherFile, cfg.WatcherFile)
	assert.Equal(t, DefaultRefreshInterval, cfg.RefreshInterval)
	assert.Equal(t, LayoutFull, cfg.Layout)
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
	assert.Equal(t, DefaultStatsEvery, cfg.StatsEvery)
	assert.False(t, cfg.DebugLogging)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "dash.yaml", `
executor_file: /var/run/bot/executor.json
interval: 1s
layout: compact
stats_every: 10
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "/var/run/bot/executor.json", cfg.ExecutorFile)
	assert.Equal(t, DefaultWatcherFile, cfg.WatcherFile)
	assert.Equal(t, time.Second, cfg.RefreshInterval)
	assert.Equal(t, LayoutCompact, cfg.Layout)
	assert.Equal(t, 10, cfg.StatsEvery)
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := writeConfig(t, "dash.json", `{"layout":"compact","interval":"2s","watcher_file":"from-file.json"}`)
	t.Setenv("MIRROR_DASH_INTERVAL", "750ms")
	t.Setenv("MIRROR_DASH_WATCHER_FILE", "from-env.json")

	flags := newFlags(t, "--layout", "full", "--debug")

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, LayoutFull, cfg.Layout, "flag beats file")
	assert.Equal(t, 750*time.Millisecond, cfg.RefreshInterval, "env beats file")
	assert.Equal(t, "from-env.json", cfg.WatcherFile)
	assert.True(t, cfg.DebugLogging)
}

func TestLoadConfigUnchangedFlagsKeepDefaults(t *testing.T) {
	cfg, err := LoadConfig("", newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, DefaultRefreshInterval, cfg.RefreshInterval)
	assert.Equal(t, LayoutFull, cfg.Layout)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "interval too short", args: []string{"--interval", "10ms"}, want: ErrInvalidInterval},
		{name: "unknown layout", args: []string{"--layout", "wide"}, want: ErrUnknownLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig("", newFlags(t, tt.args...))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("", newFlags(t, "--executor-file", ""))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "executor_file")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
}
