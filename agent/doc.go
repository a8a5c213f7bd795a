// Package agent contains the agent implementations blogmesh drives through the
// runner. The package focuses on two concerns:
//
//  1. Identity plumbing shared by every agent (BaseAgent)
//  2. The model-centric agent that performs one instructed model turn with
//     optional provider-side web search (ModelAgent)
//
// Execution Model:
//   - An agent's Run receives a *core.RunContext created by the runner
//   - ModelAgent integrates with the model, tool and flow packages to stream
//     events back through the RunContext
//
// The package keeps persistence and model specifics in their respective
// packages to avoid cyclic deps.
package agent
