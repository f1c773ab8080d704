package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akodina/shopfront/internal/client/storage"
)

func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "shopfront_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestStorage_SetGetClearCredentials(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	creds := &storage.Credentials{
		AccessToken:  "access-token-123",
		RefreshToken: "refresh-token-456",
	}

	// Get before any Set reports not found.
	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, storage.ErrCredentialsNotFound)

	require.NoError(t, store.Set(ctx, creds))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, creds, got)

	require.NoError(t, store.Clear(ctx))

	_, err = store.Get(ctx)
	assert.ErrorIs(t, err, storage.ErrCredentialsNotFound)
}

func TestStorage_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// The 401 wipe may run with nothing stored.
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))
}

func TestStorage_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.Set(ctx, &storage.Credentials{AccessToken: "old", RefreshToken: "old-r"}))
	require.NoError(t, store.Set(ctx, &storage.Credentials{AccessToken: "new", RefreshToken: "new-r"}))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", got.AccessToken)
	assert.Equal(t, "new-r", got.RefreshToken)
}

func TestStorage_CredentialsSurviveReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "shopfront_test.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	creds := &storage.Credentials{AccessToken: "persisted", RefreshToken: "persisted-r"}
	require.NoError(t, store.Set(ctx, creds))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	got, err := reopened.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, creds, got)
}
