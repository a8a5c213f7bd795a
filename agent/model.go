package agent

import (
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/blogmesh/core"
	"github.com/hupe1980/blogmesh/flow"
	"github.com/hupe1980/blogmesh/logging"
	"github.com/hupe1980/blogmesh/model"
	"github.com/hupe1980/blogmesh/tool"
)

// ModelAgentOptions configures a ModelAgent instance.
//
// Use functional options with NewModelAgent to override defaults.
type ModelAgentOptions struct {
	Description        string
	Instruction        string
	EnableStreaming    bool
	OutputKey          string
	MaxHistoryMessages int
	Tools              []tool.Tool
}

// ModelAgent performs one instructed model turn per run.
//
// This agent implementation supports:
//   - A fixed system instruction
//   - Provider-side capabilities such as web search
//   - Streaming responses surfaced as partial events
//   - Saving the final text under an output key in session state
type ModelAgent struct {
	BaseAgent
	llm                model.Model
	instruction        string
	tools              []tool.Tool
	enableStreaming    bool
	outputKey          string
	maxHistoryMessages int
}

var (
	_ core.Agent     = (*ModelAgent)(nil)
	_ flow.FlowAgent = (*ModelAgent)(nil)
)

// NewModelAgent creates a new model-based agent.
//
// The agent is initialized with:
//   - A generic assistant instruction
//   - Streaming disabled
//   - No tools
//   - 20-message conversation history limit
func NewModelAgent(name string, llm model.Model, optFns ...func(o *ModelAgentOptions)) *ModelAgent {
	opts := ModelAgentOptions{
		Instruction:        fmt.Sprintf("You are %s, a helpful AI assistant.", name),
		MaxHistoryMessages: 20,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	base := NewBaseAgent(name)
	if opts.Description != "" {
		base.SetDescription(opts.Description)
	}

	return &ModelAgent{
		BaseAgent:          base,
		llm:                llm,
		instruction:        opts.Instruction,
		tools:              append([]tool.Tool(nil), opts.Tools...),
		enableStreaming:    opts.EnableStreaming,
		outputKey:          opts.OutputKey,
		maxHistoryMessages: opts.MaxHistoryMessages,
	}
}

// GetName returns the agent's display name.
func (a *ModelAgent) GetName() string { return a.Name() }

// GetLLM returns the language model instance.
func (a *ModelAgent) GetLLM() model.Model { return a.llm }

// GetTools returns a copy of the registered tools.
func (a *ModelAgent) GetTools() []tool.Tool { return append([]tool.Tool(nil), a.tools...) }

// IsStreamingEnabled returns whether streaming responses are enabled.
func (a *ModelAgent) IsStreamingEnabled() bool { return a.enableStreaming }

// GetOutputKey returns the session state key for saving responses.
func (a *ModelAgent) GetOutputKey() string { return a.outputKey }

// MaxHistoryMessages returns the maximum number of conversation history messages to keep.
func (a *ModelAgent) MaxHistoryMessages() int { return a.maxHistoryMessages }

// GetInstruction returns the system instruction sent with every request.
func (a *ModelAgent) GetInstruction() string { return a.instruction }

// Run implements core.Agent: it executes a single-agent flow and forwards
// its events through the run context. An error event from the flow ends the
// run with that error after it has been forwarded.
func (a *ModelAgent) Run(runCtx *core.RunContext) error {
	runCtx.LogDebug("agent.run.start", "agent", a.Name(), "run", runCtx.RunID)

	start := time.Now()

	eventChan, err := flow.NewSingleAgentFlow(a).Execute(runCtx)
	if err != nil {
		runCtx.LogError("agent.flow.execute.error", "agent", a.Name(), "error", err.Error())

		return fmt.Errorf("flow execution failed: %w", err)
	}

	var (
		runErr error
		chars  int
	)

	for event := range eventChan {
		if event.IsError() && runErr == nil {
			runErr = errors.New(*event.ErrorMessage)
		}

		if !event.IsPartial() && event.Content != nil {
			chars += len(event.Content.Text())
		}

		if err := runCtx.EmitEvent(event); err != nil {
			runCtx.LogWarn("agent.run.context_done", "agent", a.Name(), "error", err)

			// Let the flow goroutine finish so it does not block on a full channel.
			for range eventChan { //nolint:revive
			}

			return err
		}
	}

	if sl, ok := runCtx.Logger().(*logging.StructuredLogger); ok {
		sl.WithComponent("agent").LogLLMCall(a.llm.Info().Name, chars, time.Since(start), runErr == nil, runErr)
	}

	if runErr != nil {
		return runErr
	}

	runCtx.LogDebug("agent.flow.execute.complete", "agent", a.Name())

	return nil
}

// WithInstruction sets the system instruction.
func WithInstruction(text string) func(o *ModelAgentOptions) {
	return func(o *ModelAgentOptions) { o.Instruction = text }
}

// WithDescription sets the agent description.
func WithDescription(desc string) func(o *ModelAgentOptions) {
	return func(o *ModelAgentOptions) { o.Description = desc }
}

// WithTools registers capabilities.
func WithTools(tools ...tool.Tool) func(o *ModelAgentOptions) {
	return func(o *ModelAgentOptions) { o.Tools = append(o.Tools, tools...) }
}

// WithStreaming toggles streaming.
func WithStreaming(enabled bool) func(o *ModelAgentOptions) {
	return func(o *ModelAgentOptions) { o.EnableStreaming = enabled }
}

// WithOutputKey saves the final response text under key in session state.
func WithOutputKey(key string) func(o *ModelAgentOptions) {
	return func(o *ModelAgentOptions) { o.OutputKey = key }
}
