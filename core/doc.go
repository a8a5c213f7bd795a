// Package core provides the foundational domain types and interfaces used by
// blogmesh. It defines the abstractions for:
//
//   - Agents (units of model-backed work)
//   - Sessions (short-lived conversational containers with event history)
//   - Events (immutable records emitted while an agent runs)
//   - RunContext (the scoped execution state handed to an agent)
//
// Persistence, orchestration and concrete agents live in other packages; core
// only exposes the small interfaces they share.
package core
