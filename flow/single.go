package flow

// SingleAgentFlow implements the execution flow for a standalone agent. It
// wires default processors for instruction resolution, content assembly,
// capability declaration and usage logging.
type SingleAgentFlow struct{ *BaseFlow }

// NewSingleAgentFlow creates a new single-agent flow with default processors.
func NewSingleAgentFlow(agent FlowAgent) *SingleAgentFlow {
	baseFlow := NewBaseFlow(agent)

	baseFlow.AddRequestProcessor(NewInstructionsProcessor())
	baseFlow.AddRequestProcessor(NewContentsProcessor())
	baseFlow.AddRequestProcessor(NewToolsProcessor())
	baseFlow.AddResponseProcessor(NewUsageProcessor())

	return &SingleAgentFlow{BaseFlow: baseFlow}
}
