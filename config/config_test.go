package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hupe1980/blogmesh/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{"GOOGLE_API_KEY": "key"}))
	require.NoError(t, err)

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, logging.LogLevelWarn, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.Stream)
	assert.Zero(t, cfg.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		EnvProvider:      "OpenAI",
		"OPENAI_API_KEY": "sk",
		EnvModel:         "gpt-4o-mini-search-preview",
		EnvBaseURL:       "http://localhost:8080/v1",
		EnvStream:        "true",
		EnvLogLevel:      "debug",
		EnvLogFormat:     "JSON",
		EnvTimeout:       "5m",
	}))
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "sk", cfg.APIKey)
	assert.Equal(t, "gpt-4o-mini-search-preview", cfg.Model)
	assert.Equal(t, "http://localhost:8080/v1", cfg.BaseURL)
	assert.True(t, cfg.Stream)
	assert.Equal(t, logging.LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 5*time.Minute, cfg.Timeout)
}

func TestFromEnv_ProviderDefaults(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{EnvProvider: "anthropic"}))
	require.NoError(t, err)
	assert.Equal(t, "claude-3-5-sonnet-20241022", cfg.Model)
	assert.Equal(t, "ANTHROPIC_API_KEY", cfg.Provider.CredentialVar())
}

func TestFromEnv_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown provider", map[string]string{EnvProvider: "mistral"}},
		{"bad stream", map[string]string{EnvStream: "maybe"}},
		{"bad level", map[string]string{EnvLogLevel: "loud"}},
		{"bad format", map[string]string{EnvLogFormat: "xml"}},
		{"bad timeout", map[string]string{EnvTimeout: "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(envMap(tt.env))
			assert.Error(t, err)
		})
	}

	_, err := FromEnv(envMap(map[string]string{EnvProvider: "mistral"}))
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestValidate_MissingCredential(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)

	err = cfg.Validate()
	require.ErrorIs(t, err, ErrMissingCredential)
	assert.Contains(t, err.Error(), "GOOGLE_API_KEY")
}

func TestLoad_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GOOGLE_API_KEY=from-file\nBLOGMESH_MODEL=gemini-2.5-flash\n"), 0o600))

	cfg, err := Load(path, envMap(map[string]string{EnvModel: "from-env"}))
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.APIKey)
	assert.Equal(t, "from-env", cfg.Model)
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.env"), envMap(map[string]string{"GOOGLE_API_KEY": "k"}))
	require.NoError(t, err)
	assert.Equal(t, "k", cfg.APIKey)
}
