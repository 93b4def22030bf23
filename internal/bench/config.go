// internal/bench/config.go
// Package: bench
package bench

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config carries every setting a single run needs. It is resolved once at
// command startup and passed into each component; nothing here is mutated
// afterward and no package-level state exists.
type Config struct {
	Model               string `json:"model" mapstructure:"model"`
	Query               string `json:"query" mapstructure:"query"`
	Host                string `json:"host" mapstructure:"host"`
	LogFile             string `json:"log_file" mapstructure:"log_file"`
	ShowDetailedMetrics bool   `json:"show_detailed_metrics" mapstructure:"show_detailed_metrics"`
	ShowTokenStats      bool   `json:"show_token_stats" mapstructure:"show_token_stats"`
	Debug               bool   `json:"debug" mapstructure:"debug"`
}

// DefaultConfigFile is looked for in the working directory when no --config
// flag is given.
const DefaultConfigFile = "gollamabench.json"

// SetDefaults registers the built-in defaults on v. Flag bindings and a
// config file, when present, override them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("model", "smollm2:135m")
	v.SetDefault("query", "Explain quantum computing in simple terms.")
	v.SetDefault("host", "http://localhost:11434")
	v.SetDefault("log_file", "ollama_test_results.json")
	v.SetDefault("show_detailed_metrics", true)
	v.SetDefault("show_token_stats", true)
	v.SetDefault("debug", false)
}

// LoadConfig resolves the configuration from v: defaults, then the config
// file at path (or DefaultConfigFile when path is empty, which is allowed
// to be absent), then any flags already bound to v.
func LoadConfig(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("could not read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigFile(DefaultConfigFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !isMissingFile(err) {
				return Config{}, fmt.Errorf("could not read config file %s: %w", DefaultConfigFile, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse configuration: %w", err)
	}
	return cfg, nil
}

// isMissingFile reports whether err means the config file simply does not
// exist. viper reports that as a plain path error when SetConfigFile is used.
func isMissingFile(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

// DisplayFlags returns the configuration snapshot stored with each result.
func (c Config) DisplayFlags() map[string]bool {
	return map[string]bool{
		"show_detailed_metrics": c.ShowDetailedMetrics,
		"show_token_stats":      c.ShowTokenStats,
	}
}
