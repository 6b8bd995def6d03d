package ports

import (
	"context"

	"github.com/aretw0/minerva/pkg/domain"
)

// SessionStore defines the interface for persisting user sessions.
//
// Implementations provide no compare-and-swap: two overlapping requests for the
// same user may both read the same node and the last Save wins.
type SessionStore interface {
	// Load retrieves the session of a user.
	// Returns domain.ErrSessionNotFound if the user has never transitioned.
	Load(ctx context.Context, userID string) (domain.Session, error)

	// Save inserts or overwrites the session of session.UserID.
	Save(ctx context.Context, session domain.Session) error
}
