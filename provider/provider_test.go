package provider

import (
	"context"
	"testing"

	"github.com/hupe1980/blogmesh/config"
	"github.com/hupe1980/blogmesh/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFactory_MissingCredential(t *testing.T) {
	_, err := NewFactory(&config.Config{Provider: config.ProviderGemini})
	assert.ErrorIs(t, err, config.ErrMissingCredential)
}

func TestConfigFactory_OpenAI(t *testing.T) {
	f, err := NewFactory(&config.Config{Provider: config.ProviderOpenAI, APIKey: "sk", Model: "gpt-4o-search-preview"})
	require.NoError(t, err)

	m, err := f.New(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-search-preview", m.Info().Name)
	assert.Equal(t, "openai", m.Info().Provider)
	assert.True(t, m.Info().SupportsSearch)
}

func TestConfigFactory_Anthropic(t *testing.T) {
	f, err := NewFactory(&config.Config{Provider: config.ProviderAnthropic, APIKey: "k", Model: "claude-3-5-sonnet-20241022"})
	require.NoError(t, err)

	m, err := f.New(context.Background(), "claude-3-5-haiku-latest")
	require.NoError(t, err)
	assert.Equal(t, "claude-3-5-haiku-latest", m.Info().Name)
	assert.Equal(t, "anthropic", m.Info().Provider)
}

func TestConfigFactory_Gemini(t *testing.T) {
	f, err := NewFactory(&config.Config{Provider: config.ProviderGemini, APIKey: "k", Model: "gemini-2.0-flash"})
	require.NoError(t, err)

	m, err := f.New(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", m.Info().Name)
	assert.Equal(t, "gemini", m.Info().Provider)
}

func TestConfigFactory_UnknownProvider(t *testing.T) {
	f := &ConfigFactory{cfg: &config.Config{Provider: "mistral", APIKey: "k"}}
	_, err := f.New(context.Background(), "x")
	assert.ErrorIs(t, err, config.ErrUnknownProvider)
}

func TestFactoryFunc(t *testing.T) {
	mock := model.NewMockModel("mock")
	var f Factory = FactoryFunc(func(context.Context, string) (model.Model, error) { return mock, nil })

	m, err := f.New(context.Background(), "any")
	require.NoError(t, err)
	assert.Same(t, mock, m)
}
