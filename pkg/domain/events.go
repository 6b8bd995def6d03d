package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTransition   EventType = "transition"
	EventUnrecognized EventType = "unrecognized"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	UserID    string    `json:"user_id"`
}

// TransitionEvent is emitted when a message moves a session to another node.
type TransitionEvent struct {
	EventBase
	FromNodeID string `json:"from_node_id"`
	ToNodeID   string `json:"to_node_id"`
	Input      string `json:"input"`
}

// InputEvent is emitted when a message matches none of the node options.
type InputEvent struct {
	EventBase
	NodeID string `json:"node_id"`
	Input  string `json:"input"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnTransition   func(context.Context, *TransitionEvent)
	OnUnrecognized func(context.Context, *InputEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnTransition:   chain(h.OnTransition, other.OnTransition),
		OnUnrecognized: chain(h.OnUnrecognized, other.OnUnrecognized),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
