package core

import "context"

// Runner defines the minimal orchestration contract for executing a root agent
// within a session.
//
// Semantics & Guarantees:
//   - Event Ordering: events are delivered in the order the agent produced them.
//   - Channel Lifecycle: the events channel is closed after the run completes
//     (success, error, or cancellation). The error channel carries at most one
//     terminal error then closes.
//   - Partial Events: implementations MAY emit partial events; consumers should
//     rely on IsPartial() to decide what to keep.
type Runner interface {
	// Run starts an asynchronous agent execution bound to sessionID using
	// userContent as input. The immediate error covers startup failures.
	Run(ctx context.Context, sessionID string, userContent Content) (string, <-chan Event, <-chan error, error)

	// Cancel requests cooperative termination of an in-flight run.
	Cancel(runID string) error
}
