package flow

import (
	"fmt"

	"github.com/hupe1980/blogmesh/core"
	"github.com/hupe1980/blogmesh/model"
)

// BaseFlow is a minimal single‑agent flow implementation that performs one
// request -> LLM cycle with pluggable pre/post processors. Search runs on the
// provider side, so there is no local tool loop.
type BaseFlow struct {
	agent              FlowAgent
	requestProcessors  []RequestProcessor
	responseProcessors []ResponseProcessor
}

// NewBaseFlow creates a new basic single-agent flow without processors.
func NewBaseFlow(agent FlowAgent) *BaseFlow {
	return &BaseFlow{
		agent:              agent,
		requestProcessors:  []RequestProcessor{},
		responseProcessors: []ResponseProcessor{},
	}
}

// AddRequestProcessor appends a request processor; order of registration defines execution order.
func (f *BaseFlow) AddRequestProcessor(processor RequestProcessor) {
	f.requestProcessors = append(f.requestProcessors, processor)
}

// AddResponseProcessor appends a response processor executed after each model chunk.
func (f *BaseFlow) AddResponseProcessor(processor ResponseProcessor) {
	f.responseProcessors = append(f.responseProcessors, processor)
}

// Execute launches the flow asynchronously and returns a channel of Events.
// The channel is closed after the final response or an error event has been
// emitted. Callers should range over the returned channel.
func (f *BaseFlow) Execute(runCtx *core.RunContext) (<-chan core.Event, error) {
	if f.agent.GetLLM() == nil {
		return nil, fmt.Errorf("agent %s has no model", f.agent.GetName())
	}

	eventChan := make(chan core.Event, 100)

	go func() {
		defer close(eventChan)

		f.runOnce(runCtx, eventChan)
	}()

	return eventChan, nil
}

// emitError converts an internal error to an error Event.
func (f *BaseFlow) emitError(runCtx *core.RunContext, eventChan chan<- core.Event, err error) {
	eventChan <- core.NewErrorEvent(runCtx.RunID, f.agent.GetName(), err)
}

// runOnce performs one model turn.
func (f *BaseFlow) runOnce(runCtx *core.RunContext, eventChan chan<- core.Event) {
	req := &model.Request{Stream: f.agent.IsStreamingEnabled()}

	for _, processor := range f.requestProcessors {
		if err := processor.ProcessRequest(runCtx, req, f.agent); err != nil {
			f.emitError(runCtx, eventChan, fmt.Errorf("request processor %s failed: %w", processor.Name(), err))
			return
		}
	}

	respCh, errCh := f.agent.GetLLM().Generate(runCtx.Context, *req)

	for respCh != nil || errCh != nil {
		select {
		case <-runCtx.Done():
			f.emitError(runCtx, eventChan, runCtx.Err())
			return
		case resp, ok := <-respCh:
			if !ok {
				respCh = nil
				continue
			}

			for _, processor := range f.responseProcessors {
				if err := processor.ProcessResponse(runCtx, &resp, f.agent); err != nil {
					f.emitError(runCtx, eventChan, fmt.Errorf("response processor %s failed: %w", processor.Name(), err))
					return
				}
			}

			eventChan <- f.newEvent(runCtx, resp)
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			if err != nil {
				f.emitError(runCtx, eventChan, fmt.Errorf("model %s: %w", f.agent.GetLLM().Info().Name, err))
				return
			}
		}
	}
}

func (f *BaseFlow) newEvent(runCtx *core.RunContext, resp model.Response) core.Event {
	ev := core.NewEvent(runCtx.RunID, f.agent.GetName())
	content := resp.Content
	ev.Content = &content
	partial := resp.Partial
	ev.Partial = &partial
	ev.FinishReason = resp.FinishReason

	if !resp.Partial {
		complete := true
		ev.TurnComplete = &complete

		if key := f.agent.GetOutputKey(); key != "" {
			ev.Actions.StateDelta = map[string]any{key: content.Text()}
		}
	}

	return ev
}
