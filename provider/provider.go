// Package provider turns a config.Config into a concrete model.Model.
package provider

import (
	"context"
	"fmt"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"

	"github.com/hupe1980/blogmesh/config"
	"github.com/hupe1980/blogmesh/model"
	"github.com/hupe1980/blogmesh/model/anthropic"
	"github.com/hupe1980/blogmesh/model/gemini"
	"github.com/hupe1980/blogmesh/model/openai"
)

// Factory builds a model for a model id. Stages may request different ids
// from the same factory.
type Factory interface {
	New(ctx context.Context, modelID string) (model.Model, error)
}

// FactoryFunc adapts an ordinary function to Factory.
type FactoryFunc func(ctx context.Context, modelID string) (model.Model, error)

// New implements Factory.
func (f FactoryFunc) New(ctx context.Context, modelID string) (model.Model, error) {
	return f(ctx, modelID)
}

// ConfigFactory builds models for the provider and credential in Config.
type ConfigFactory struct {
	cfg *config.Config
}

// NewFactory returns a Factory for cfg. The credential is validated here so a
// misconfigured process never reaches a provider SDK.
func NewFactory(cfg *config.Config) (*ConfigFactory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ConfigFactory{cfg: cfg}, nil
}

// New implements Factory. An empty modelID selects the configured model.
func (f *ConfigFactory) New(ctx context.Context, modelID string) (model.Model, error) {
	if modelID == "" {
		modelID = f.cfg.Model
	}

	switch f.cfg.Provider {
	case config.ProviderGemini:
		m, err := gemini.NewModel(ctx, func(o *gemini.Options) {
			o.Model = modelID
			o.APIKey = f.cfg.APIKey
		})
		if err != nil {
			return nil, err
		}
		return m, nil
	case config.ProviderOpenAI:
		return openai.NewModel(func(o *openai.Options) {
			o.Model = modelID
			o.APIKey = f.cfg.APIKey
			o.BaseURL = f.cfg.BaseURL
		}), nil
	case config.ProviderAnthropic:
		return anthropic.NewModel(func(o *anthropic.Options) {
			o.Model = anthropicsdk.Model(modelID)
			o.APIKey = f.cfg.APIKey
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownProvider, f.cfg.Provider)
	}
}
