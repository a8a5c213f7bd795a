// Package runner implements the orchestration layer that drives a single
// agent turn.
//
// # Responsibilities
//   - Agent invocation (async event streaming; the blogmesh façade adds a
//     blocking collector on top)
//   - Event processing & side‑effect application (session state deltas)
//   - Session history persistence
//   - Run lifecycle management & cancellation
//
// See runner.go for the operational implementation details.
package runner
