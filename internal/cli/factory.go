package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/minerva"
	"github.com/aretw0/minerva/internal/config"
	"github.com/aretw0/minerva/pkg/adapters/file"
	"github.com/aretw0/minerva/pkg/adapters/memory"
	"github.com/aretw0/minerva/pkg/adapters/redis"
	"github.com/aretw0/minerva/pkg/domain"
	"github.com/aretw0/minerva/pkg/persistence/middleware"
	"github.com/aretw0/minerva/pkg/ports"
)

// NewLoader returns the graph file loader when path is set and the built-in
// tree otherwise. A non-empty start overrides the loader's start node.
func NewLoader(path, start string) (ports.GraphLoader, error) {
	var loader ports.GraphLoader = memory.NewCatalogLoader()
	if path != "" {
		l, err := file.Load(path)
		if err != nil {
			return nil, err
		}
		loader = l
	}
	if start != "" {
		loader = startOverride{GraphLoader: loader, start: start}
	}
	return loader, nil
}

type startOverride struct {
	ports.GraphLoader
	start string
}

func (s startOverride) StartNodeID() string { return s.start }

// NewStore connects to Redis when configured and falls back to memory.
// With a user id secret the store only ever sees pseudonymous ids.
// The returned close function releases the connection.
func NewStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.SessionStore, func() error, error) {
	store, closeFn, err := newBackend(ctx, cfg, logger)
	if err != nil || cfg.UserIDSecret == "" {
		return store, closeFn, err
	}

	pseudonym, err := middleware.NewPseudonymMiddleware([]byte(cfg.UserIDSecret))
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	logger.Debug("session keys are pseudonymous")
	return middleware.Chain(store, pseudonym), closeFn, nil
}

func newBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.SessionStore, func() error, error) {
	if !cfg.UseRedis() {
		logger.Debug("using in-memory session store")
		return memory.NewStore(), func() error { return nil }, nil
	}

	store := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB,
		redis.WithPrefix(cfg.RedisPrefix),
		redis.WithTTL(cfg.SessionTTL),
	)
	if err := store.Ping(ctx); err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}
	logger.Info("using redis session store", "addr", cfg.RedisAddr, "prefix", cfg.RedisPrefix, "ttl", cfg.SessionTTL)
	return store, store.Close, nil
}

// NewBot wires a Bot from the configuration.
func NewBot(ctx context.Context, cfg *config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) (*minerva.Bot, func() error, error) {
	loader, err := NewLoader(cfg.GraphFile, cfg.StartNode)
	if err != nil {
		return nil, nil, err
	}

	store, closeStore, err := NewStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	bot, err := minerva.New(
		minerva.WithLoader(loader),
		minerva.WithStore(store),
		minerva.WithLogger(logger),
		minerva.WithLifecycleHooks(hooks),
	)
	if err != nil {
		closeStore()
		return nil, nil, fmt.Errorf("error initializing bot: %w", err)
	}
	return bot, closeStore, nil
}

// DebugHooks logs every transition and re-prompt at debug level.
func DebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(ctx context.Context, e *domain.TransitionEvent) {
			logger.Debug("transition", "user_id", e.UserID, "from", e.FromNodeID, "to", e.ToNodeID, "input", e.Input)
		},
		OnUnrecognized: func(ctx context.Context, e *domain.InputEvent) {
			logger.Debug("unrecognized input", "user_id", e.UserID, "node_id", e.NodeID, "input", e.Input)
		},
	}
}
