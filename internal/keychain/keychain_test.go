package keychain_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"taskclient/internal/keychain"
	"taskclient/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	store := keychain.NewFileStore(path)

	auth := models.AuthPayload{
		Token: "abc",
		User:  models.User{ID: "1", Username: "u", Email: "e@x.com"},
	}
	require.NoError(t, store.Set(ctx, auth))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_EmptySlot(t *testing.T) {
	store := keychain.NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))

	_, err := store.Get(context.Background())
	assert.ErrorIs(t, err, keychain.ErrNoCredentials)
}

func TestFileStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := keychain.NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))

	first := models.AuthPayload{Token: "old", User: models.User{ID: "1", Username: "u", Email: "e@x.com"}}
	second := models.AuthPayload{Token: "new", User: models.User{ID: "2", Username: "v", Email: "v@x.com"}}
	require.NoError(t, store.Set(ctx, first))
	require.NoError(t, store.Set(ctx, second))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestFileStore_Reset(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := keychain.NewFileStore(path)

	require.NoError(t, store.Set(ctx, models.AuthPayload{
		Token: "abc",
		User:  models.User{ID: "1", Username: "u", Email: "e@x.com"},
	}))
	require.NoError(t, store.Reset(ctx))

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, keychain.ErrNoCredentials)

	// Resetting an already empty slot is fine.
	assert.NoError(t, store.Reset(ctx))
}

func TestFileStore_CorruptBlob(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{name: "not json", blob: "{garbage"},
		{name: "token without user", blob: `{"token":"abc"}`},
		{name: "user without token", blob: `{"user":{"id":"1","username":"u","email":"e@x.com"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "credentials.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.blob), 0o600))

			store := keychain.NewFileStore(path)
			_, err := store.Get(context.Background())
			assert.Error(t, err)
			assert.NotErrorIs(t, err, keychain.ErrNoCredentials)
		})
	}
}

func TestMemStore(t *testing.T) {
	ctx := context.Background()
	store := keychain.NewMemStore()

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, keychain.ErrNoCredentials)

	auth := models.AuthPayload{Token: "abc", User: models.User{ID: "1", Username: "u", Email: "e@x.com"}}
	require.NoError(t, store.Set(ctx, auth))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth, got)

	require.NoError(t, store.Reset(ctx))
	_, err = store.Get(ctx)
	assert.ErrorIs(t, err, keychain.ErrNoCredentials)
}
