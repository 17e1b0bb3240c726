// Package orreryconfig loads and hot-reloads orrery's runtime configuration
// from a TOML file and environment variables, layered through viper.
package orreryconfig

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/nightfall/orrery/internal/logging"
)

// Config holds all runtime configuration for an orrery session. Values are
// populated from orrery.toml, ORRERY_* environment variables, and flags, in
// that ascending order of precedence.
type Config struct {
	EphemerisPath string `mapstructure:"ephemeris_path" toml:"ephemeris_path"`
	CatalogPath   string `mapstructure:"catalog_path" toml:"catalog_path"`
	LogLevel      string `mapstructure:"log_level" toml:"log_level"`
	RefreshMillis int    `mapstructure:"refresh_millis" toml:"refresh_millis"`
}

// Load reads configuration via viper, applying built-in defaults for any
// value not set by config file or environment; it reads no flags. configFile, when
// non-empty, is used verbatim instead of viper's default search path.
func Load(configFile string) (Config, error) {
	viper.SetDefault("ephemeris_path", "")
	viper.SetDefault("catalog_path", "")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("refresh_millis", 1000)

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("orrery")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("ORRERY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DumpTOML renders cfg as a standalone TOML document — the effective,
// fully-resolved configuration after defaults, file, environment, and flag
// layering — suitable for writing out as a starting orrery.toml.
func DumpTOML(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// WatchReload invokes onChange with the freshly reloaded Config every time
// the active config file changes on disk. It returns immediately; the
// watch runs until the process exits. Reload errors are logged and do not
// stop watching.
func WatchReload(log *logging.Logger, onChange func(Config)) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := Load(viper.ConfigFileUsed())
		if err != nil {
			log.Error("reload config: %v", err)
			return
		}
		onChange(cfg)
	})
	viper.WatchConfig()
}
