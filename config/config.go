// Package config loads blogmesh process configuration from the environment,
// optionally seeded from a dotenv file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/hupe1980/blogmesh/logging"
)

var (
	// ErrMissingCredential indicates that the selected provider has no API key.
	ErrMissingCredential = errors.New("missing credential")
	// ErrUnknownProvider indicates an unsupported BLOGMESH_PROVIDER value.
	ErrUnknownProvider = errors.New("unknown provider")
)

// Provider names a model backend.
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// Environment variable names.
const (
	EnvProvider  = "BLOGMESH_PROVIDER"
	EnvModel     = "BLOGMESH_MODEL"
	EnvBaseURL   = "BLOGMESH_BASE_URL"
	EnvStream    = "BLOGMESH_STREAM"
	EnvLogLevel  = "BLOGMESH_LOG_LEVEL"
	EnvLogFormat = "BLOGMESH_LOG_FORMAT"
	EnvTimeout   = "BLOGMESH_TIMEOUT"
)

// CredentialVar returns the environment variable holding p's API key.
func (p Provider) CredentialVar() string {
	switch p {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return "GOOGLE_API_KEY"
	}
}

// DefaultModel returns the model id used when BLOGMESH_MODEL is unset.
func (p Provider) DefaultModel() string {
	switch p {
	case ProviderOpenAI:
		return "gpt-4o-search-preview"
	case ProviderAnthropic:
		return "claude-3-5-sonnet-20241022"
	default:
		return "gemini-2.0-flash"
	}
}

// Config is the resolved process configuration.
type Config struct {
	Provider  Provider
	APIKey    string
	Model     string
	BaseURL   string
	Stream    bool
	LogLevel  logging.LogLevel
	LogFormat string
	// Timeout bounds the whole pipeline; zero means no limit.
	Timeout time.Duration
}

// Load reads the dotenv file at path (a missing file is ignored) and then
// resolves configuration through getenv. Process environment values win over
// values from the file.
func Load(path string, getenv func(string) string) (*Config, error) {
	file := map[string]string{}

	if path != "" {
		vars, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if vars != nil {
			file = vars
		}
	}

	return FromEnv(func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return file[key]
	})
}

// FromEnv resolves configuration through getenv only.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Provider:  ProviderGemini,
		LogLevel:  logging.LogLevelWarn,
		LogFormat: "text",
	}

	if v := strings.TrimSpace(getenv(EnvProvider)); v != "" {
		cfg.Provider = Provider(strings.ToLower(v))
	}

	switch cfg.Provider {
	case ProviderGemini, ProviderOpenAI, ProviderAnthropic:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}

	cfg.APIKey = strings.TrimSpace(getenv(cfg.Provider.CredentialVar()))

	cfg.Model = strings.TrimSpace(getenv(EnvModel))
	if cfg.Model == "" {
		cfg.Model = cfg.Provider.DefaultModel()
	}

	cfg.BaseURL = strings.TrimSpace(getenv(EnvBaseURL))

	if v := getenv(EnvStream); v != "" {
		stream, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvStream, err)
		}
		cfg.Stream = stream
	}

	if v := getenv(EnvLogLevel); v != "" {
		level, err := logging.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if v := strings.ToLower(strings.TrimSpace(getenv(EnvLogFormat))); v != "" {
		if v != "text" && v != "json" {
			return nil, fmt.Errorf("parse %s: unknown format %q", EnvLogFormat, v)
		}
		cfg.LogFormat = v
	}

	if v := getenv(EnvTimeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = timeout
	}

	return cfg, nil
}

// Validate reports ErrMissingCredential when the provider's API key is empty.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: %s is not set", ErrMissingCredential, c.Provider.CredentialVar())
	}
	return nil
}
