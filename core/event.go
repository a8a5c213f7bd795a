package core

import (
	"time"

	"github.com/google/uuid"
)

// EventActions encodes side-effects attached to an Event.
type EventActions struct {
	StateDelta map[string]any `json:"state_delta,omitempty"`
}

// Event is the unit of communication between agents, the runner and callers.
// After emission it should be treated as immutable. Content may be nil for
// error-only events.
type Event struct {
	ID           string            `json:"id"`
	InvocationID string            `json:"invocation_id"`
	Author       string            `json:"author"`
	Actions      EventActions      `json:"actions"`
	Timestamp    time.Time         `json:"timestamp"`
	Content      *Content          `json:"content,omitempty"`
	Partial      *bool             `json:"partial,omitempty"`
	TurnComplete *bool             `json:"turn_complete,omitempty"`
	ErrorMessage *string           `json:"error_message,omitempty"`
	FinishReason string            `json:"finish_reason,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// NewEvent creates a bare event authored by 'author' bound to an invocation.
func NewEvent(invocationID, author string) Event {
	return Event{
		ID:           NewID(),
		InvocationID: invocationID,
		Author:       author,
		Timestamp:    time.Now().UTC(),
		Actions:      EventActions{},
	}
}

// NewMessageEvent creates an assistant message event with a single text part.
func NewMessageEvent(author, message string) Event {
	e := NewEvent("", author)
	c := NewTextContent("assistant", message)
	e.Content = &c
	return e
}

// NewUserContentEvent creates a user-authored event carrying content.
func NewUserContentEvent(invocationID string, content *Content) Event {
	e := NewEvent(invocationID, "user")
	e.Content = content
	return e
}

// NewErrorEvent creates a system event carrying an error message.
func NewErrorEvent(invocationID, author string, err error) Event {
	e := NewEvent(invocationID, author)
	msg := err.Error()
	e.ErrorMessage = &msg
	return e
}

// NewID generates a new unique identifier for events, runs and sessions.
func NewID() string { return uuid.NewString() }

// IsPartial reports whether this event is a streaming fragment that will be
// followed by the aggregated final event.
func (e Event) IsPartial() bool { return e.Partial != nil && *e.Partial }

// IsError reports whether the event carries an error message.
func (e Event) IsError() bool { return e.ErrorMessage != nil }

// IsFinalResponse reports whether the event closes an assistant turn. Web
// search runs on the provider side, so every non-partial event is final.
func (e Event) IsFinalResponse() bool { return !e.IsPartial() }

// TextParts returns the text fragments of the event content.
func (e Event) TextParts() []string {
	if e.Content == nil {
		return nil
	}
	return e.Content.Texts()
}
