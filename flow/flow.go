// Package flow provides execution flow management for blogmesh agents.
//
// Flows orchestrate one model turn of an agent: request processors assemble
// the model request, the model is called, and response processors observe
// every chunk before it is emitted as an event.
package flow

import (
	"github.com/hupe1980/blogmesh/core"
	"github.com/hupe1980/blogmesh/model"
	"github.com/hupe1980/blogmesh/tool"
)

// Flow defines the interface for agent execution flows.
type Flow interface {
	// Execute runs the flow with the given context.
	// It returns a channel of events that represent the execution progress.
	Execute(runCtx *core.RunContext) (<-chan core.Event, error)
}

// FlowAgent defines the interface that agents must implement to work with flows.
//
// This interface provides flows with access to agent capabilities without
// exposing the full agent implementation details.
type FlowAgent interface {
	// GetName returns the agent's display name.
	GetName() string

	// GetLLM returns the language model instance.
	GetLLM() model.Model

	// GetInstruction returns the system instruction for every request.
	GetInstruction() string

	// GetTools returns the capabilities offered to the model, in registration order.
	GetTools() []tool.Tool

	// IsStreamingEnabled returns whether streaming responses are enabled.
	IsStreamingEnabled() bool

	// GetOutputKey returns the session state key for saving responses.
	GetOutputKey() string

	// MaxHistoryMessages returns the maximum number of conversation history messages to keep.
	MaxHistoryMessages() int
}

// RequestProcessor processes the request before sending it to the LLM.
type RequestProcessor interface {
	// Name returns the processor's identifier.
	Name() string
	// ProcessRequest modifies the request before LLM execution.
	ProcessRequest(runCtx *core.RunContext, req *model.Request, agent FlowAgent) error
}

// ResponseProcessor processes the response after receiving it from the LLM.
type ResponseProcessor interface {
	// Name returns the processor's identifier.
	Name() string
	// ProcessResponse observes or rewrites a model chunk before emission.
	ProcessResponse(runCtx *core.RunContext, resp *model.Response, agent FlowAgent) error
}
