// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rovshanmuradov/mirror-dash/internal/state"
)

type Config struct {
	ExecutorFile    string        `mapstructure:"executor_file"`
	WatcherFile     string        `mapstructure:"watcher_file"`
	RefreshInterval time.Duration `mapstructure:"interval"`
	Layout          string        `mapstructure:"layout"`
	LogFile         string        `mapstructure:"log_file"`
	DebugLogging    bool          `mapstructure:"debug"`
	StatsEvery      int           `mapstructure:"stats_every"`
}

const (
	DefaultExecutorFile    = state.DefaultExecutorFile
	DefaultWatcherFile     = state.DefaultWatcherFile
	DefaultRefreshInterval = 500 * time.Millisecond
	DefaultLogFile         = "mirror-dash.log"
	DefaultStatsEvery      = 120

	MinRefreshInterval = 50 * time.Millisecond

	EnvPrefix = "MIRROR_DASH"
)

// Layout names.
const (
	LayoutFull    = "full"
	LayoutCompact = "compact"
)

var (
	ErrInvalidInterval = errors.New("invalid refresh interval")
	ErrUnknownLayout   = errors.New("unknown layout")
)

// Flag names bound to config keys.
var flagKeys = map[string]string{
	"executor-file": "executor_file",
	"watcher-file":  "watcher_file",
	"interval":      "interval",
	"layout":        "layout",
	"log-file":      "log_file",
	"debug":         "debug",
}

// LoadConfig builds the configuration from defaults, an optional config
// file, MIRROR_DASH_* environment variables and command line flags, in
// increasing precedence. path may be empty and flags may be nil.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	defaults := map[string]interface{}{
		"executor_file": DefaultExecutorFile,
		"watcher_file":  DefaultWatcherFile,
		"interval":      DefaultRefreshInterval,
		"layout":        LayoutFull,
		"log_file":      DefaultLogFile,
		"debug":         false,
		"stats_every":   DefaultStatsEvery,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// RegisterFlags adds the dashboard flags to fs with their defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("executor-file", DefaultExecutorFile, "Path to the executor state file")
	fs.String("watcher-file", DefaultWatcherFile, "Path to the watcher state file")
	fs.Duration("interval", DefaultRefreshInterval, "Refresh interval")
	fs.String("layout", LayoutFull, "Dashboard layout (full|compact)")
	fs.String("log-file", DefaultLogFile, "Log file written while the dashboard runs")
	fs.Bool("debug", false, "Enable debug logging")
}

func validateConfig(cfg *Config) error {
	if cfg.ExecutorFile == "" {
		return errors.New("executor_file is empty")
	}
	if cfg.WatcherFile == "" {
		return errors.New("watcher_file is empty")
	}
	if cfg.RefreshInterval < MinRefreshInterval {
		return fmt.Errorf("%w: %s (minimum %s)", ErrInvalidInterval, cfg.RefreshInterval, MinRefreshInterval)
	}
	switch cfg.Layout {
	case LayoutFull, LayoutCompact:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLayout, cfg.Layout)
	}
	if cfg.StatsEvery < 0 {
		return errors.New("invalid stats_every")
	}
	return nil
}
