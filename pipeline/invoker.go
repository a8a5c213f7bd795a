package pipeline

import (
	"context"
	"fmt"

	"github.com/hupe1980/blogmesh"
	"github.com/hupe1980/blogmesh/agent"
	"github.com/hupe1980/blogmesh/logging"
	"github.com/hupe1980/blogmesh/provider"
	"github.com/hupe1980/blogmesh/tool"
)

// Invoker performs one external agent call and returns its text output.
type Invoker interface {
	Invoke(ctx context.Context, spec AgentSpec, prompt string) (string, error)
}

// InvokerFunc adapts an ordinary function to Invoker.
type InvokerFunc func(ctx context.Context, spec AgentSpec, prompt string) (string, error)

// Invoke implements Invoker.
func (f InvokerFunc) Invoke(ctx context.Context, spec AgentSpec, prompt string) (string, error) {
	return f(ctx, spec, prompt)
}

// AgentInvokerOptions configures an AgentInvoker.
type AgentInvokerOptions struct {
	// Model replaces the model id requested by each AgentSpec when set.
	Model string
	// Stream enables streaming responses.
	Stream bool
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// AgentInvoker builds a fresh ModelAgent for every call and runs it through
// the blogmesh response collector.
type AgentInvoker struct {
	factory provider.Factory
	opts    AgentInvokerOptions
}

var _ Invoker = (*AgentInvoker)(nil)

// NewAgentInvoker creates an AgentInvoker backed by factory.
func NewAgentInvoker(factory provider.Factory, optFns ...func(o *AgentInvokerOptions)) *AgentInvoker {
	opts := AgentInvokerOptions{Logger: logging.NoOpLogger{}}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &AgentInvoker{factory: factory, opts: opts}
}

// Invoke implements Invoker.
func (i *AgentInvoker) Invoke(ctx context.Context, spec AgentSpec, prompt string) (string, error) {
	modelID := spec.Model
	if i.opts.Model != "" {
		modelID = i.opts.Model
	}

	llm, err := i.factory.New(ctx, modelID)
	if err != nil {
		return "", fmt.Errorf("create model for %s: %w", spec.Name, err)
	}

	optFns := []func(o *agent.ModelAgentOptions){
		agent.WithDescription(spec.Description),
		agent.WithInstruction(spec.Instruction),
		agent.WithStreaming(i.opts.Stream),
		agent.WithOutputKey(spec.Stage.String()),
	}
	if spec.Search {
		optFns = append(optFns, agent.WithTools(tool.GoogleSearch))
	}

	a := agent.NewModelAgent(spec.Name, llm, optFns...)

	return blogmesh.Collect(ctx, a, prompt, func(o *blogmesh.Options) {
		o.Logger = i.opts.Logger
	})
}
