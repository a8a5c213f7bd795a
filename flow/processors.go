package flow

import (
	"fmt"

	"github.com/hupe1980/blogmesh/core"
	"github.com/hupe1980/blogmesh/model"
	"github.com/hupe1980/blogmesh/tool"
)

// InstructionsProcessor handles system prompt and instruction processing.
type InstructionsProcessor struct{}

// NewInstructionsProcessor creates a new instructions processor.
func NewInstructionsProcessor() *InstructionsProcessor { return &InstructionsProcessor{} }

// Name returns the processor's identifier.
func (p *InstructionsProcessor) Name() string { return "instructions" }

// ProcessRequest copies the agent's system instruction onto the request.
// Instructions are sent verbatim; braces in them are not template markers.
func (p *InstructionsProcessor) ProcessRequest(runCtx *core.RunContext, req *model.Request, agent FlowAgent) error {
	req.Instructions = agent.GetInstruction()

	runCtx.LogDebug("agent.instruction.resolved", "agent", agent.GetName(), "length", len(req.Instructions))

	return nil
}

// ContentsProcessor copies the conversation history into the request.
type ContentsProcessor struct{}

// NewContentsProcessor creates a new contents processor.
func NewContentsProcessor() *ContentsProcessor { return &ContentsProcessor{} }

// Name returns the processor's identifier.
func (p *ContentsProcessor) Name() string { return "contents" }

// ProcessRequest adds conversation history, bounded by the agent's history
// limit, falling back to the run's user content when the session is empty.
func (p *ContentsProcessor) ProcessRequest(runCtx *core.RunContext, req *model.Request, agent FlowAgent) error {
	var contents []core.Content

	if runCtx.Session != nil {
		events := runCtx.Session.GetConversationHistory()
		if limit := agent.MaxHistoryMessages(); limit > 0 && len(events) > limit {
			events = events[len(events)-limit:]
		}

		for _, ev := range events {
			if len(ev.Content.Parts) > 0 {
				contents = append(contents, *ev.Content)
			}
		}
	}

	if len(contents) == 0 && len(runCtx.UserContent.Parts) > 0 {
		contents = append(contents, runCtx.UserContent)
	}

	if len(contents) == 0 {
		return fmt.Errorf("no contents to send")
	}

	req.Contents = contents

	return nil
}

// ToolsProcessor declares the agent's capabilities on the request.
type ToolsProcessor struct{}

// NewToolsProcessor creates a new tools processor.
func NewToolsProcessor() *ToolsProcessor { return &ToolsProcessor{} }

// Name returns the processor's identifier.
func (p *ToolsProcessor) Name() string { return "tools" }

// ProcessRequest attaches tool definitions. Models without search support
// reject a search capability instead of silently ignoring it.
func (p *ToolsProcessor) ProcessRequest(_ *core.RunContext, req *model.Request, agent FlowAgent) error {
	req.Tools = tool.Definitions(agent.GetTools()...)

	if req.HasTool(model.ToolTypeWebSearch) && !agent.GetLLM().Info().SupportsSearch {
		return fmt.Errorf("model %s does not support web search", agent.GetLLM().Info().Name)
	}

	return nil
}

// UsageProcessor logs token usage reported on final chunks.
type UsageProcessor struct{}

// NewUsageProcessor creates a new usage processor.
func NewUsageProcessor() *UsageProcessor { return &UsageProcessor{} }

// Name returns the processor's identifier.
func (p *UsageProcessor) Name() string { return "usage" }

// ProcessResponse implements ResponseProcessor.
func (p *UsageProcessor) ProcessResponse(runCtx *core.RunContext, resp *model.Response, agent FlowAgent) error {
	if resp.Partial || resp.Usage == nil {
		return nil
	}

	runCtx.LogDebug(
		"agent.model.usage",
		"agent", agent.GetName(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"total_tokens", resp.Usage.TotalTokens,
	)

	return nil
}
