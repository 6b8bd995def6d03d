package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/aretw0/minerva/pkg/domain"
	"github.com/aretw0/minerva/pkg/ports"
)

// ErrEmptySecret is returned when a pseudonym middleware is built without a key.
var ErrEmptySecret = errors.New("pseudonym secret must not be empty")

type pseudonymMiddleware struct {
	next   ports.SessionStore
	secret []byte
}

// NewPseudonymMiddleware creates a middleware that replaces user ids with
// their HMAC-SHA256 before they reach the store. Callers keep seeing the
// original ids; the backend only ever holds the digests.
func NewPseudonymMiddleware(secret []byte) (Middleware, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	key := append([]byte(nil), secret...)
	return func(next ports.SessionStore) ports.SessionStore {
		return &pseudonymMiddleware{next: next, secret: key}
	}, nil
}

func (m *pseudonymMiddleware) Save(ctx context.Context, session domain.Session) error {
	session.UserID = m.pseudonym(session.UserID)
	return m.next.Save(ctx, session)
}

func (m *pseudonymMiddleware) Load(ctx context.Context, userID string) (domain.Session, error) {
	session, err := m.next.Load(ctx, m.pseudonym(userID))
	if err != nil {
		return domain.Session{}, err
	}
	session.UserID = userID
	return session, nil
}

func (m *pseudonymMiddleware) pseudonym(userID string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(userID))
	return hex.EncodeToString(mac.Sum(nil))
}
