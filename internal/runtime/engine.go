package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/minerva/internal/logging"
	"github.com/aretw0/minerva/pkg/domain"
	"github.com/aretw0/minerva/pkg/graph"
	"github.com/aretw0/minerva/pkg/input"
	"github.com/aretw0/minerva/pkg/session"
)

// Engine answers user messages by walking the menu graph.
type Engine struct {
	graph    *graph.Graph
	sessions *session.Manager
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	now      func() time.Time
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates an engine over an immutable graph and a session manager.
func NewEngine(g *graph.Graph, sessions *session.Manager, opts ...EngineOption) *Engine {
	e := &Engine{
		graph:    g,
		sessions: sessions,
		logger:   logging.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Graph returns the graph the engine navigates.
func (e *Engine) Graph() *graph.Graph {
	return e.graph
}

// Reply processes one message from userID.
//
// On a matching option the session moves to the destination and its message is
// returned. Otherwise the session is left untouched and the current node is
// re-prompted. The only errors are session store failures.
func (e *Engine) Reply(ctx context.Context, userID, message string) (domain.Reply, error) {
	normalized := input.Normalize(message)

	current, err := e.sessions.Get(ctx, userID)
	if err != nil {
		return domain.Reply{}, err
	}

	if !e.graph.Has(current) {
		e.logger.Info("session points to unknown node, falling back to start",
			"user_id", userID,
			"node_id", current,
			"start", e.graph.Start(),
		)
		current = e.graph.Start()
	}

	next, matched := e.graph.Transition(current, normalized)
	if !matched {
		e.emitUnrecognized(ctx, userID, current, normalized)
		return domain.Reply{
			State:    current,
			Response: Reprompt(e.graph, current),
		}, nil
	}

	if err := e.sessions.Set(ctx, userID, next); err != nil {
		return domain.Reply{}, fmt.Errorf("transition %s -> %s: %w", current, next, err)
	}

	e.emitTransition(ctx, userID, current, next, normalized)

	msg, _ := e.graph.MessageFor(next)
	return domain.Reply{
		State:    next,
		Response: msg,
		Matched:  true,
	}, nil
}

func (e *Engine) emitTransition(ctx context.Context, userID, from, to, in string) {
	if e.hooks.OnTransition == nil {
		return
	}
	e.hooks.OnTransition(ctx, &domain.TransitionEvent{
		EventBase: domain.EventBase{
			Timestamp: e.now(),
			Type:      domain.EventTransition,
			UserID:    userID,
		},
		FromNodeID: from,
		ToNodeID:   to,
		Input:      in,
	})
}

func (e *Engine) emitUnrecognized(ctx context.Context, userID, nodeID, in string) {
	if e.hooks.OnUnrecognized == nil {
		return
	}
	e.hooks.OnUnrecognized(ctx, &domain.InputEvent{
		EventBase: domain.EventBase{
			Timestamp: e.now(),
			Type:      domain.EventUnrecognized,
			UserID:    userID,
		},
		NodeID: nodeID,
		Input:  in,
	})
}
