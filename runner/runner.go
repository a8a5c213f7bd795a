package runner

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/blogmesh/core"
	"github.com/hupe1980/blogmesh/logging"
	"github.com/hupe1980/blogmesh/session"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// EventBufferSize sets channel buffering for events.
	EventBufferSize int
	// SessionStore persists session history and state.
	SessionStore core.SessionStore
	// Logger receives runner diagnostics.
	Logger logging.Logger
}

// Runner coordinates agent execution: creates run contexts, streams events,
// applies side‑effects, and persists history. Public methods are safe for
// concurrent use.
type Runner struct {
	agent core.Agent

	eventBufferSize int
	sessionStore    core.SessionStore
	logger          logging.Logger

	activeRuns map[string]context.CancelFunc
	mu         sync.RWMutex
}

var _ core.Runner = (*Runner)(nil)

// New constructs a Runner with optional overrides.
func New(agent core.Agent, optFns ...func(o *Options)) *Runner {
	opts := Options{
		EventBufferSize: 100,
		SessionStore:    session.NewInMemoryStore(),
		Logger:          logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Runner{
		agent:           agent,
		eventBufferSize: opts.EventBufferSize,
		sessionStore:    opts.SessionStore,
		logger:          opts.Logger,
		activeRuns:      make(map[string]context.CancelFunc),
	}
}

// Run starts an asynchronous invocation. The events channel closes when the
// agent returns; the error channel carries at most one terminal error.
func (r *Runner) Run(
	ctx context.Context,
	sessionID string,
	userContent core.Content,
) (string, <-chan core.Event, <-chan error, error) {
	userEvent := core.NewUserContentEvent("", &userContent)

	runID := core.NewID()
	userEvent.InvocationID = runID

	if err := r.sessionStore.AppendEvent(sessionID, userEvent); err != nil {
		return "", nil, nil, fmt.Errorf("failed to append user event: %w", err)
	}

	sess, err := r.sessionStore.Get(sessionID)
	if err != nil {
		return "", nil, nil, fmt.Errorf("failed to get session: %w", err)
	}

	eventsCh := make(chan core.Event, r.eventBufferSize)
	errorsCh := make(chan error, 1)
	agentEmit := make(chan core.Event, r.eventBufferSize)

	ctx, cancel := context.WithCancel(ctx)
	r.mu.Lock()
	r.activeRuns[runID] = cancel
	r.mu.Unlock()

	runCtx := core.NewRunContext(
		ctx,
		sessionID,
		runID,
		core.AgentInfo{Name: r.agent.Name(), Type: fmt.Sprintf("%T", r.agent)},
		userContent,
		agentEmit,
		sess,
		r.sessionStore,
		r.logger,
	)

	r.logger.Debug("runner.run.start", "run_id", runID, "session_id", sessionID, "agent", r.agent.Name())

	var agentErr error

	go func() {
		defer close(agentEmit)

		agentErr = r.agent.Run(runCtx)
	}()

	go func() {
		defer func() {
			r.mu.Lock()
			delete(r.activeRuns, runID)
			r.mu.Unlock()
			cancel()
			close(eventsCh)
			close(errorsCh)
		}()

		if err := r.processEvents(runCtx, sessionID, agentEmit, eventsCh); err != nil {
			cancel()
			drain(agentEmit)
			errorsCh <- err
			return
		}

		// agentEmit is closed, so the agent goroutine has returned.
		if agentErr != nil {
			errorsCh <- fmt.Errorf("agent execution failed: %w", agentErr)
		}
	}()

	return runID, eventsCh, errorsCh, nil
}

// Cancel cancels a running run by ID.
func (r *Runner) Cancel(runID string) error {
	r.mu.RLock()
	cancel, exists := r.activeRuns[runID]
	r.mu.RUnlock()

	if !exists {
		return fmt.Errorf("run %s not found", runID)
	}

	cancel()

	return nil
}

func (r *Runner) processEvents(
	runCtx *core.RunContext,
	sessionID string,
	agentEmit <-chan core.Event,
	eventsCh chan<- core.Event,
) error {
	for ev := range agentEmit {
		if len(ev.Actions.StateDelta) > 0 {
			if err := r.sessionStore.ApplyDelta(sessionID, ev.Actions.StateDelta); err != nil {
				return fmt.Errorf("failed to apply state delta: %w", err)
			}
		}

		if !ev.IsPartial() {
			if err := r.sessionStore.AppendEvent(sessionID, ev); err != nil {
				return fmt.Errorf("failed to append event to session: %w", err)
			}
		}

		select {
		case <-runCtx.Done():
			return runCtx.Err()
		case eventsCh <- ev:
			r.logger.Debug("runner.event.delivered", "event_id", ev.ID, "session_id", sessionID, "partial", ev.IsPartial())
		}
	}

	return nil
}

// drain consumes remaining agent events until the agent goroutine returns.
func drain(agentEmit <-chan core.Event) {
	for range agentEmit { //nolint:revive
	}
}
