package gemini

import (
	"testing"

	"github.com/hupe1980/blogmesh"
	"github.com/hupe1980/blogmesh/core"
	"github.com/hupe1980/blogmesh/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestBuildContents_MapsRoles(t *testing.T) {
	contents := buildContents([]core.Content{
		core.NewTextContent("system", "instructions"),
		core.NewTextContent("user", "Tópico: tênis esportivo"),
		core.NewTextContent("assistant", "ok"),
		{Role: "user"},
	})

	require.Len(t, contents, 2)
	assert.EqualValues(t, genai.RoleUser, contents[0].Role)
	assert.Equal(t, "Tópico: tênis esportivo", contents[0].Parts[0].Text)
	assert.EqualValues(t, genai.RoleModel, contents[1].Role)
}

func TestBuildConfig_GoogleSearch(t *testing.T) {
	m := NewModelFromClient(nil)

	cfg := m.buildConfig(model.Request{
		Instructions: "Você é um assistente de pesquisa.",
		Tools:        []model.ToolDefinition{{Type: model.ToolTypeWebSearch, Name: "google_search"}},
	})
	require.NotNil(t, cfg.SystemInstruction)
	assert.Equal(t, "Você é um assistente de pesquisa.", cfg.SystemInstruction.Parts[0].Text)
	require.Len(t, cfg.Tools, 1)
	assert.NotNil(t, cfg.Tools[0].GoogleSearch)
	assert.Equal(t, float32(0.7), *cfg.Temperature)

	plain := m.buildConfig(model.Request{})
	assert.Nil(t, plain.SystemInstruction)
	assert.Empty(t, plain.Tools)
}

func TestResponseParts_KeepsPartBoundaries(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			FinishReason: genai.FinishReasonStop,
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: "thinking", Thought: true},
				{Text: "A"},
				{Text: "B"},
				nil,
				{Text: "C"},
			}},
		}},
	}

	parts, finish := responseParts(resp)
	content := core.Content{Role: "assistant", Parts: parts}
	assert.Equal(t, []string{"A", "B", "C"}, content.Texts())
	assert.Equal(t, "STOP", finish)

	ev := core.NewEvent("run", "agente_buscador")
	ev.Content = &content
	assert.Equal(t, "A\nB\nC\n", blogmesh.FinalText([]core.Event{ev}))

	parts, finish = responseParts(&genai.GenerateContentResponse{})
	assert.Empty(t, parts)
	assert.Empty(t, finish)
}

func TestStreamAccumulator_JoinsChunksWithinPart(t *testing.T) {
	var acc streamAccumulator
	acc.add([]core.Part{core.TextPart{Text: "Lança"}})
	acc.add([]core.Part{core.TextPart{Text: "mentos"}, core.TextPart{Text: "Fontes"}})
	acc.add([]core.Part{core.TextPart{Text: ": g1"}})

	content := core.Content{Parts: acc.parts()}
	assert.Equal(t, []string{"Lançamentos", "Fontes: g1"}, content.Texts())

	var empty streamAccumulator
	assert.Empty(t, empty.parts())
}

func TestInfo(t *testing.T) {
	m := NewModelFromClient(nil, func(o *Options) { o.Model = "gemini-2.5-flash" })
	assert.Equal(t, model.Info{Name: "gemini-2.5-flash", Provider: "gemini", SupportsSearch: true}, m.Info())
}
