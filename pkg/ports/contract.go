package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/minerva/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSessionStoreContract runs a suite of tests to verify that a SessionStore
// implementation adheres to the defined interface contract.
func RunSessionStoreContract(t *testing.T, store SessionStore) {
	ctx := context.Background()
	userID := "contract-test-user-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, domain.Session{UserID: userID, NodeID: "sociosanitario", UpdatedAt: time.Now()})
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, userID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, userID, loaded.UserID)
		assert.Equal(t, "sociosanitario", loaded.NodeID)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, domain.Session{UserID: userID, NodeID: "a"}))
		require.NoError(t, store.Save(ctx, domain.Session{UserID: userID, NodeID: "b"}))

		loaded, err := store.Load(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "b", loaded.NodeID, "last write wins")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+userID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Users Are Independent", func(t *testing.T) {
		other := userID + "-other"
		require.NoError(t, store.Save(ctx, domain.Session{UserID: other, NodeID: "general"}))
		require.NoError(t, store.Save(ctx, domain.Session{UserID: userID, NodeID: "cajero"}))

		loaded, err := store.Load(ctx, other)
		require.NoError(t, err)
		assert.Equal(t, "general", loaded.NodeID)
	})
}
