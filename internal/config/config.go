// Package config loads Spool settings from defaults, an optional YAML file and
// SPOOL_* environment variables.
package config

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const (
	// FileEnv is the env var naming an explicit config file.
	FileEnv = "SPOOL_CONFIG"
	// EnvPrefix prefixes every env override, e.g. SPOOL_WEB_ADDR.
	EnvPrefix = "SPOOL"
)

// Config holds application configuration.
type Config struct {
	Web   WebConfig   `mapstructure:"web"`
	Log   LogConfig   `mapstructure:"log"`
	Trace TraceConfig `mapstructure:"trace"`
	UI    UIConfig    `mapstructure:"ui"`
}

// WebConfig holds HTTP server settings.
type WebConfig struct {
	Addr string `mapstructure:"addr"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "text"
	File   string `mapstructure:"file"`   // empty = stderr for web, discard for the TUI
}

// TraceConfig holds OpenTelemetry export settings.
type TraceConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
	// Insecure sends host:port endpoints over plain HTTP. URL endpoints
	// follow their scheme.
	Insecure bool `mapstructure:"insecure"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	InitialTopic string `mapstructure:"initial_topic"`
}

// Load reads configuration. path overrides SPOOL_CONFIG; when both are empty
// ~/.config/spool/config.yaml is used if present.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("web.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("trace.endpoint", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	v.SetDefault("trace.service_name", cmp.Or(os.Getenv("OTEL_SERVICE_NAME"), "spool"))
	v.SetDefault("trace.insecure", envBool("OTEL_EXPORTER_OTLP_INSECURE", true))
	v.SetDefault("ui.initial_topic", "")

	v.SetConfigType("yaml")
	if path == "" {
		path = os.Getenv(FileEnv)
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "spool"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func envBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return b
}
