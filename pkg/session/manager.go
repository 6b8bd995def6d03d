// Package session resolves the current menu position of each user.
//
// The Manager does not serialize access per user. Two messages from the same
// user processed at the same time both read the same node, and the later Set
// silently wins. This is an accepted property of the bot.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/minerva/internal/logging"
	"github.com/aretw0/minerva/pkg/domain"
	"github.com/aretw0/minerva/pkg/ports"
)

// Manager orchestrates session access on top of a SessionStore.
type Manager struct {
	store  ports.SessionStore
	start  string
	now    func() time.Time
	logger *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithClock overrides the time source used for Session.UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a new Session Manager. Users without a stored session are
// positioned at startNode.
func NewManager(store ports.SessionStore, startNode string, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		start:  startNode,
		now:    time.Now,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns the node the user is positioned at, or the start node if the
// user has never transitioned. The default is not persisted.
func (m *Manager) Get(ctx context.Context, userID string) (string, error) {
	s, err := m.store.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return m.start, nil
		}
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	return s.NodeID, nil
}

// Set moves the user to nodeID, inserting or overwriting the session.
func (m *Manager) Set(ctx context.Context, userID, nodeID string) error {
	err := m.store.Save(ctx, domain.Session{
		UserID:    userID,
		NodeID:    nodeID,
		UpdatedAt: m.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	m.logger.Debug("session updated", "user", userID, "node_id", nodeID)
	return nil
}

// Start returns the default node for unseen users.
func (m *Manager) Start() string {
	return m.start
}

// Store returns the underlying session store.
func (m *Manager) Store() ports.SessionStore {
	return m.store
}
