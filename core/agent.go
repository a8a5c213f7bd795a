package core

// Agent defines the interface every blogmesh agent implements.
//
// Agents receive their input through a RunContext, emit events through it and
// return once their turn is complete. Implementations must respect context
// cancellation.
type Agent interface {
	Name() string
	Description() string
	Run(runCtx *RunContext) error
}

// AgentInfo carries identifying details about an agent used in contexts & events.
type AgentInfo struct{ Name, Type string }
