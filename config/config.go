// Package config loads the process-wide configuration once at start.
//
// Values are layered: built-in defaults, an optional YAML file, environment
// variables, then functional options. The result is validated before use so
// a missing provider key fails at startup rather than on every request.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/YspCoder/duet/adapter"
)

// ProviderSettings holds the credentials and overrides for one provider.
type ProviderSettings struct {
	APIKey    string `yaml:"api_key" env:"API_KEY" validate:"required"`
	BaseURL   string `yaml:"base_url" env:"BASE_URL" validate:"omitempty,url"`
	Model     string `yaml:"model" env:"MODEL" validate:"required"`
	MaxTokens int    `yaml:"max_tokens" env:"MAX_TOKENS" validate:"gt=0"`
	Version   string `yaml:"version,omitempty" env:"VERSION"`
}

// Config holds the relay configuration.
type Config struct {
	Addr           string        `yaml:"addr" env:"DUET_ADDR" validate:"required"`
	LogLevel       string        `yaml:"log_level" env:"DUET_LOG_LEVEL" validate:"oneof=off debug info warn error"`
	Timeout        time.Duration `yaml:"timeout" env:"DUET_TIMEOUT" validate:"gte=0"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes" env:"DUET_MAX_BODY_BYTES" validate:"gt=0"`
	MetricsEnabled bool          `yaml:"metrics_enabled" env:"DUET_METRICS_ENABLED"`
	TraceEnabled   bool          `yaml:"trace_enabled" env:"TRACE_ENABLED"`
	TraceEndpoint  string        `yaml:"trace_endpoint" env:"TRACE_ENDPOINT"`

	OpenAI    ProviderSettings `yaml:"openai" envPrefix:"OPENAI_"`
	Anthropic ProviderSettings `yaml:"anthropic" envPrefix:"ANTHROPIC_"`
}

// ConfigOption mutates a Config after files and environment are applied.
type ConfigOption func(*Config)

// NewConfig returns the built-in defaults. Model and token defaults come
// from the provider registry.
func NewConfig() *Config {
	cfg := &Config{
		Addr:           ":3000",
		LogLevel:       "info",
		MaxBodyBytes:   1 << 20,
		MetricsEnabled: true,
	}

	registry := adapter.GetDefaultRegistry()
	if spec, ok := registry.GetProviderSpec(adapter.ProviderOpenAI); ok {
		cfg.OpenAI.Model = spec.DefaultModel
		cfg.OpenAI.MaxTokens = spec.DefaultMaxTokens
	}
	if spec, ok := registry.GetProviderSpec(adapter.ProviderAnthropic); ok {
		cfg.Anthropic.Model = spec.DefaultModel
		cfg.Anthropic.MaxTokens = spec.DefaultMaxTokens
		cfg.Anthropic.Version = spec.RequiredHeaders["anthropic-version"]
	}
	return cfg
}

// LoadConfig builds and validates the configuration. path may be empty.
func LoadConfig(path string, opts ...ConfigOption) (*Config, error) {
	cfg := NewConfig()

	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	for _, opt := range opts {
		opt(cfg)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration and reports every invalid field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param())
	}
}

// SetAddr sets the listen address.
func SetAddr(addr string) ConfigOption {
	return func(c *Config) {
		c.Addr = addr
	}
}

// SetLogLevel sets the log level name.
func SetLogLevel(level string) ConfigOption {
	return func(c *Config) {
		c.LogLevel = strings.ToLower(level)
	}
}

// SetTimeout sets the per-call provider timeout.
func SetTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// SetOpenAIKey sets the OpenAI credential.
func SetOpenAIKey(key string) ConfigOption {
	return func(c *Config) {
		c.OpenAI.APIKey = key
	}
}

// SetAnthropicKey sets the Anthropic credential.
func SetAnthropicKey(key string) ConfigOption {
	return func(c *Config) {
		c.Anthropic.APIKey = key
	}
}

// SetMetricsEnabled toggles the /metrics endpoint.
func SetMetricsEnabled(enabled bool) ConfigOption {
	return func(c *Config) {
		c.MetricsEnabled = enabled
	}
}
