// Package config provides application configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "FIXERGW"

// Config holds the complete application configuration.
type Config struct {
	Server ServerConfig
	Fixer  FixerConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int  `mapstructure:"port"`
	ServeSwagger bool `mapstructure:"serve_swagger"`
	ServeMetrics bool `mapstructure:"serve_metrics"`
}

// FixerConfig holds settings for the fixer.io client.
type FixerConfig struct {
	AccessKey      string   `mapstructure:"access_key"`
	BaseURL        string   `mapstructure:"base_url"`
	DefaultSymbols []string `mapstructure:"default_symbols"`
	TimeoutSec     int      `mapstructure:"timeout_sec"`
}

// Timeout returns the per-request timeout; zero disables it.
func (c FixerConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// LoadConfig reads configuration from config files, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file found or error loading it: %v\n", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config search paths
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./internal/config")

	if err := v.ReadInConfig(); err != nil {
		// It's okay if no config file, we have defaults and env
		fmt.Printf("Config file not found: %v\n", err)
	}

	return load(v)
}

// load applies env bindings and defaults to v and decodes the result.
func load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// default values
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.serve_swagger", true)
	v.SetDefault("server.serve_metrics", true)
	v.SetDefault("fixer.access_key", "")
	v.SetDefault("fixer.base_url", "http://data.fixer.io/api/")
	v.SetDefault("fixer.default_symbols", []string{})
	v.SetDefault("fixer.timeout_sec", 10)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Fixer.DefaultSymbols = splitSymbols(cfg.Fixer.DefaultSymbols)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// splitSymbols accepts both YAML lists and comma-separated env values.
func splitSymbols(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.FieldsFunc(item, func(r rune) bool { return r == ',' || r == ' ' }) {
			out = append(out, strings.ToUpper(part))
		}
	}
	return out
}

// Validate checks that all required configuration fields are set and valid.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be positive, got %d", c.Server.Port))
	}

	if c.Fixer.AccessKey == "" {
		errs = append(errs, fmt.Errorf("fixer.access_key is required (set %s_FIXER_ACCESS_KEY)", envPrefix))
	}
	if c.Fixer.BaseURL == "" {
		errs = append(errs, fmt.Errorf("fixer.base_url is required"))
	}
	if c.Fixer.TimeoutSec < 0 {
		errs = append(errs, fmt.Errorf("fixer.timeout_sec must be non-negative, got %d", c.Fixer.TimeoutSec))
	}

	return errors.Join(errs...)
}
