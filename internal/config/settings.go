package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. FINSIM_LOG_LEVEL.
const EnvPrefix = "FINSIM"

// LoggingSettings select the zap level, encoding and destination.
type LoggingSettings struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputFile string `mapstructure:"output_file"`
}

// Settings are the runtime knobs of the finsim CLI, separate from the profile.
type Settings struct {
	Logging      LoggingSettings `mapstructure:"logging"`
	TickInterval time.Duration   `mapstructure:"tick_interval"`
	Seed         int64           `mapstructure:"seed"`
	Years        int             `mapstructure:"years"`
	OutputFormat string          `mapstructure:"output_format"`
}

// DefaultSettings returns the values used when nothing overrides them.
func DefaultSettings() Settings {
	return Settings{
		Logging: LoggingSettings{
			Level:  "warn",
			Format: "console",
		},
		TickInterval: 0,
		Seed:         0,
		Years:        0,
		OutputFormat: "console",
	}
}

// flagKeys maps command-line flag names to settings keys.
var flagKeys = map[string]string{
	"log-level":     "logging.level",
	"log-format":    "logging.format",
	"log-file":      "logging.output_file",
	"tick-interval": "tick_interval",
	"seed":          "seed",
	"years":         "years",
	"format":        "output_format",
}

// LoadSettings merges defaults, an optional settings file, FINSIM_* environment
// variables and any flags in fs that were set, in increasing precedence.
func LoadSettings(path string, fs *pflag.FlagSet) (Settings, error) {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.output_file", defaults.Logging.OutputFile)
	v.SetDefault("tick_interval", defaults.TickInterval)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("years", defaults.Years)
	v.SetDefault("output_format", defaults.OutputFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("error reading settings file %s: %w", path, err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unable to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the CLI cannot honour.
func (s Settings) Validate() error {
	switch s.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q: expected json or console", s.Logging.Format)
	}
	if s.TickInterval < 0 {
		return errors.New("tick interval cannot be negative")
	}
	if s.Years < 0 {
		return errors.New("years cannot be negative")
	}
	return nil
}
