// Package tool declares the capabilities an agent may hand to its model.
// blogmesh only uses server-side capabilities: the provider runs them during
// its own turn, so nothing here executes locally.
package tool

import "github.com/hupe1980/blogmesh/model"

// Tool describes a capability offered to the model.
//
// Tool implementations should:
//   - Provide clear, descriptive names (snake_case recommended)
//   - Map onto a ToolDefinition the model adapters understand
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description of what this tool does.
	Description() string

	// Definition returns the provider-agnostic declaration sent with requests.
	Definition() model.ToolDefinition
}

// WebSearch grants the model access to its provider's native web search
// (Google Search grounding on Gemini, web_search_options on OpenAI, the
// web_search server tool on Anthropic).
type WebSearch struct{}

// GoogleSearch is the capability used by the research stages.
var GoogleSearch Tool = WebSearch{}

// Name implements Tool.
func (WebSearch) Name() string { return "google_search" }

// Description implements Tool.
func (WebSearch) Description() string {
	return "Search the web for recent, relevant information"
}

// Definition implements Tool.
func (w WebSearch) Definition() model.ToolDefinition {
	return model.ToolDefinition{Type: model.ToolTypeWebSearch, Name: w.Name(), Description: w.Description()}
}

// Definitions converts tools into model declarations preserving order.
func Definitions(tools ...Tool) []model.ToolDefinition {
	if len(tools) == 0 {
		return nil
	}
	defs := make([]model.ToolDefinition, 0, len(tools))
	for _, t := range tools {
		defs = append(defs, t.Definition())
	}
	return defs
}
