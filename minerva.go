package minerva

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/aretw0/minerva/internal/logging"
	"github.com/aretw0/minerva/internal/runtime"
	"github.com/aretw0/minerva/pkg/adapters/memory"
	"github.com/aretw0/minerva/pkg/domain"
	"github.com/aretw0/minerva/pkg/graph"
	"github.com/aretw0/minerva/pkg/ports"
	"github.com/aretw0/minerva/pkg/session"
)

// Version is the release of the bot.
//
//go:embed VERSION
var Version string

// Bot is the high-level entry point for the Minerva library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Bot struct {
	engine *runtime.Engine
	graph  *graph.Graph
	loader ports.GraphLoader
	store  ports.SessionStore
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option defines a functional option for configuring the Bot.
type Option func(*Bot)

// WithLoader injects a custom GraphLoader instead of the built-in Minerva menu.
func WithLoader(l ports.GraphLoader) Option {
	return func(b *Bot) {
		b.loader = l
	}
}

// WithStore injects a SessionStore. Defaults to an in-memory store.
func WithStore(s ports.SessionStore) Option {
	return func(b *Bot) {
		b.store = s
	}
}

// WithLifecycleHooks registers observability hooks. Repeated calls are merged.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(b *Bot) {
		b.hooks = b.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the bot.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bot) {
		b.logger = logger
	}
}

// New initializes a Bot. The graph is loaded and validated once here and is
// read-only afterwards.
func New(opts ...Option) (*Bot, error) {
	b := &Bot{}
	for _, opt := range opts {
		opt(b)
	}

	if b.loader == nil {
		b.loader = memory.NewCatalogLoader()
	}
	if b.store == nil {
		b.store = memory.NewStore()
	}
	if b.logger == nil {
		b.logger = logging.NewNop()
	}

	nodes, err := b.loader.LoadNodes()
	if err != nil {
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}

	g, err := graph.New(b.loader.StartNodeID(), nodes...)
	if err != nil {
		return nil, err
	}
	b.graph = g

	if orphans := g.Unreachable(); len(orphans) > 0 {
		b.logger.Warn("graph has unreachable nodes", "nodes", orphans)
	}

	sessions := session.NewManager(b.store, g.Start(), session.WithLogger(b.logger))
	b.engine = runtime.NewEngine(g, sessions,
		runtime.WithLogger(b.logger),
		runtime.WithLifecycleHooks(b.hooks),
	)

	b.logger.Debug("bot initialized", "nodes", g.Len(), "start", g.Start())
	return b, nil
}

// Reply processes one message from a user and returns the resulting node and
// the text to display.
func (b *Bot) Reply(ctx context.Context, userID, message string) (domain.Reply, error) {
	return b.engine.Reply(ctx, userID, message)
}

// Graph returns the immutable menu graph.
func (b *Bot) Graph() *graph.Graph {
	return b.graph
}

// Inspect returns copies of every node, start node first.
func (b *Bot) Inspect() []domain.Node {
	return b.graph.Nodes()
}

// Store returns the session store the bot writes to.
func (b *Bot) Store() ports.SessionStore {
	return b.store
}
