// Package config loads Splitwizard settings with viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Storage StorageConfig
	Log     LogConfig
	Metrics MetricsConfig
	UI      UIConfig
}

// StorageConfig holds sqlite settings.
type StorageConfig struct {
	Path string
}

// LogConfig holds logging settings. An empty File means stderr.
type LogConfig struct {
	Level string
	File  string
}

// MetricsConfig holds the optional node_exporter textfile path.
type MetricsConfig struct {
	Textfile string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string        `mapstructure:"currency_symbol"`
	AlertTimeout   time.Duration `mapstructure:"alert_timeout"`
}

// Load reads configuration from .env, the config file and env vars, in
// increasing order of precedence. Env var overrides use prefix SPLITWIZARD_.
// cfgPath overrides the config file location when non-empty.
func Load(cfgPath string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	dataDir := defaultDataDir()
	v.SetDefault("storage.path", filepath.Join(dataDir, "splitwizard.db"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(dataDir, "splitwizard.log"))
	v.SetDefault("metrics.textfile", "")
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.alert_timeout", 3*time.Second)

	v.SetConfigType("toml")

	if cfgPath == "" {
		cfgPath = os.Getenv("SPLITWIZARD_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(defaultConfigDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SPLITWIZARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit path that does not exist is reported; a missing default file is fine.
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func defaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "splitwizard")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "splitwizard")
}

func defaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "splitwizard")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "splitwizard")
}
