package testutil

import (
	"context"

	"github.com/hupe1980/blogmesh/core"
)

// NewRunContext builds a RunContext around sess with a buffered emit
// channel. A non-empty user text is appended to the session as an event.
func NewRunContext(ctx context.Context, sess *core.Session, userText string) (*core.RunContext, chan core.Event) {
	emit := make(chan core.Event, 100)
	var user core.Content

	if userText != "" {
		user = core.NewTextContent("user", userText)
		sess.AddEvent(core.NewUserContentEvent("test-run", &user))
	}

	runCtx := core.NewRunContext(
		ctx,
		sess.ID,
		"test-run",
		core.AgentInfo{Name: "test-agent", Type: "test"},
		user,
		emit,
		sess,
		nil,
		nil,
	)

	return runCtx, emit
}
