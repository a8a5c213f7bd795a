// Package blogmesh provides the response-collector façade over the runner:
// every call spins up a fresh in-memory session and runner, sends a single
// prompt to an agent and reduces the resulting events to the final text.
//
// Most callers use Collect. Invoke returns the raw event history for callers
// that need partial chunks or metadata.
package blogmesh

import (
	"context"
	"strings"

	"github.com/hupe1980/blogmesh/core"
	"github.com/hupe1980/blogmesh/logging"
	"github.com/hupe1980/blogmesh/runner"
	"github.com/hupe1980/blogmesh/session"
)

// Options configures a single collector call.
type Options struct {
	// UserID identifies the caller in logs.
	UserID string

	// EventBufferSize sets the runner's channel buffering.
	EventBufferSize int

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Invoke runs agent a once against prompt in a throwaway session and returns
// every event the run produced, in order.
func Invoke(ctx context.Context, a core.Agent, prompt string, optFns ...func(o *Options)) ([]core.Event, error) {
	opts := Options{
		UserID:          "user1",
		EventBufferSize: 100,
		Logger:          logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	store := session.NewInMemoryStore()

	sess, err := store.Create(core.NewID())
	if err != nil {
		return nil, err
	}

	r := runner.New(a, func(o *runner.Options) {
		o.SessionStore = store
		o.EventBufferSize = opts.EventBufferSize
		o.Logger = opts.Logger
	})

	opts.Logger.Debug("blogmesh.invoke", "agent", a.Name(), "user_id", opts.UserID, "session_id", sess.ID)

	runID, eventsCh, errorsCh, err := r.Run(ctx, sess.ID, core.NewTextContent("user", prompt))
	if err != nil {
		return nil, err
	}

	var events []core.Event

	for {
		select {
		case <-ctx.Done():
			// The run may already have finished on its own.
			_ = r.Cancel(runID)
			return events, ctx.Err()

		case ev, ok := <-eventsCh:
			if !ok {
				// The runner sends its terminal error before closing both channels.
				if errorsCh != nil {
					if err := <-errorsCh; err != nil {
						return events, terminalError(ctx, err)
					}
				}
				return events, nil
			}
			events = append(events, ev)

		case err, ok := <-errorsCh:
			if !ok {
				errorsCh = nil
				continue
			}
			if err != nil {
				return events, terminalError(ctx, err)
			}
		}
	}
}

// terminalError prefers the caller's cancellation over the error it caused
// inside the run.
func terminalError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

// Collect runs agent a once against prompt and returns the concatenated text
// of its final responses.
func Collect(ctx context.Context, a core.Agent, prompt string, optFns ...func(o *Options)) (string, error) {
	events, err := Invoke(ctx, a, prompt, optFns...)
	if err != nil {
		return "", err
	}

	return FinalText(events), nil
}

// FinalText appends, for every final-response event, each text part followed
// by a newline. Partial chunks are ignored.
func FinalText(events []core.Event) string {
	var b strings.Builder

	for _, ev := range events {
		if !ev.IsFinalResponse() {
			continue
		}
		for _, text := range ev.TextParts() {
			b.WriteString(text)
			b.WriteString("\n")
		}
	}

	return b.String()
}
