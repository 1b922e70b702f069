// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-builder/internal/llm"
)

// Config can be loaded from a JSON or YAML file and overlaid from the environment.
// All fields are optional; missing values use defaults or come from CLI flags.
type Config struct {
	// Model
	APIKey string            `json:"api_key,omitempty" yaml:"api_key,omitempty"` // Gemini API key
	Models map[string]string `json:"models,omitempty" yaml:"models,omitempty"`   // Tier (lite, standard, advanced) to model name

	// Storage
	StorageDriver string `json:"storage_driver,omitempty" yaml:"storage_driver,omitempty" validate:"omitempty,oneof=memory sqlite postgres"`
	StorageDSN    string `json:"storage_dsn,omitempty" yaml:"storage_dsn,omitempty"`
	DatabaseURL   string `json:"database_url,omitempty" yaml:"database_url,omitempty"` // PostgreSQL connection URL, used when storage_dsn is empty

	// Server
	Port       int     `json:"port,omitempty" yaml:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	RateLimit  float64 `json:"rate_limit,omitempty" yaml:"rate_limit,omitempty" validate:"gte=0"` // Requests per second per client
	RateBurst  int     `json:"rate_burst,omitempty" yaml:"rate_burst,omitempty" validate:"gte=0"`
	CORSOrigin string  `json:"cors_origin,omitempty" yaml:"cors_origin,omitempty"`

	// Limits (runes of input sent to the model)
	FieldTextLimit int `json:"field_text_limit,omitempty" yaml:"field_text_limit,omitempty" validate:"gte=0"`
	ParseTextLimit int `json:"parse_text_limit,omitempty" yaml:"parse_text_limit,omitempty" validate:"gte=0"`

	// Logging
	LogLevel    string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Development bool   `json:"development,omitempty" yaml:"development,omitempty"` // Human-readable console logs
	Verbose     bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`         // Forces debug level
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		StorageDriver:  "memory",
		Port:           8080,
		RateLimit:      10,
		RateBurst:      20,
		CORSOrigin:     "*",
		FieldTextLimit: 4000,
		ParseTextLimit: 6000,
		LogLevel:       "info",
	}
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Load builds the effective configuration: the file at path (if any), then
// environment variables, then defaults for anything still unset. The result is validated.
func Load(path string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}

	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}

// ApplyEnv overlays GEMINI_API_KEY, DATABASE_URL, STORAGE_DRIVER, STORAGE_DSN,
// PORT and LOG_LEVEL onto c when they are set.
func (c *Config) ApplyEnv() error {
	strs := map[string]*string{
		"GEMINI_API_KEY": &c.APIKey,
		"DATABASE_URL":   &c.DatabaseURL,
		"STORAGE_DRIVER": &c.StorageDriver,
		"STORAGE_DSN":    &c.StorageDSN,
		"LOG_LEVEL":      &c.LogLevel,
	}
	for name, field := range strs {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*field = v
		}
	}

	if v, ok := os.LookupEnv("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT: %v", err)
		}
		c.Port = port
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	switch c.StorageDriver {
	case "sqlite", "postgres":
		if c.DSN() == "" {
			return fmt.Errorf("config error: storage driver %q requires 'storage_dsn'", c.StorageDriver)
		}
	}

	for tier := range c.Models {
		switch llm.ModelTier(tier) {
		case llm.TierLite, llm.TierStandard, llm.TierAdvanced:
		default:
			return fmt.Errorf("config error: unknown model tier %q", tier)
		}
	}

	return nil
}

// DSN returns the storage DSN, falling back to DatabaseURL for postgres.
func (c *Config) DSN() string {
	if c.StorageDSN == "" && c.StorageDriver == "postgres" {
		return c.DatabaseURL
	}
	return c.StorageDSN
}

// Level returns the effective log level.
func (c *Config) Level() string {
	if c.Verbose {
		return "debug"
	}
	return c.LogLevel
}

// LLMConfig returns the Gemini client configuration with model overrides applied.
func (c *Config) LLMConfig() *llm.Config {
	cfg := llm.DefaultConfig()
	for tier, model := range c.Models {
		cfg = cfg.WithModel(llm.ModelTier(tier), model)
	}
	return cfg
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.StorageDriver == "" {
		result.StorageDriver = defaults.StorageDriver
	}
	if result.StorageDSN == "" {
		result.StorageDSN = defaults.StorageDSN
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.CORSOrigin == "" {
		result.CORSOrigin = defaults.CORSOrigin
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.Models == nil && defaults.Models != nil {
		result.Models = defaults.Models
	}

	// Numeric fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RateLimit == 0 {
		result.RateLimit = defaults.RateLimit
	}
	if result.RateBurst == 0 {
		result.RateBurst = defaults.RateBurst
	}
	if result.FieldTextLimit == 0 {
		result.FieldTextLimit = defaults.FieldTextLimit
	}
	if result.ParseTextLimit == 0 {
		result.ParseTextLimit = defaults.ParseTextLimit
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
