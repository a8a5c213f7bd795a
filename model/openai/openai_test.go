package openai

import (
	"testing"

	"github.com/hupe1980/blogmesh/core"
	"github.com/hupe1980/blogmesh/model"
	"github.com/stretchr/testify/assert"
)

func TestBuildMessages(t *testing.T) {
	req := model.Request{
		Instructions: "be brief",
		Contents: []core.Content{
			core.NewTextContent("system", "be brief"),
			core.NewTextContent("user", "Tópico: tênis"),
			core.NewTextContent("assistant", "ok"),
			{Role: "user"},
		},
	}

	msgs := buildMessages(req)

	// duplicated system instructions and empty contents are dropped
	assert.Len(t, msgs, 3)
	assert.NotNil(t, msgs[0].OfSystem)
	assert.NotNil(t, msgs[1].OfUser)
	assert.NotNil(t, msgs[2].OfAssistant)
}

func TestBuildParams_SearchDropsTemperature(t *testing.T) {
	m := NewModel(func(o *Options) { o.APIKey = "test" })

	withSearch := m.buildParams(model.Request{
		Tools: []model.ToolDefinition{{Type: model.ToolTypeWebSearch, Name: "web_search"}},
	}, nil)
	assert.Equal(t, "medium", string(withSearch.WebSearchOptions.SearchContextSize))
	assert.False(t, withSearch.Temperature.Valid())

	plain := m.buildParams(model.Request{}, nil)
	assert.True(t, plain.Temperature.Valid())
}

func TestInfo(t *testing.T) {
	m := NewModel(func(o *Options) { o.APIKey = "test" })
	info := m.Info()
	assert.Equal(t, "openai", info.Provider)
	assert.True(t, info.SupportsSearch)
}
