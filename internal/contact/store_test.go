package contact

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/econectar/econectar-web/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "econectar-test.db")
	store, err := NewStore(&config.DbConfig{
		Type: "sqlite3",
		Cfg:  config.Sqlite3Config{DSN: dsn},
	}, "file://../../migrations")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndListMessages(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	id, err := store.SaveMessage(ctx, "Ana", "ana@example.com", "I want to host a hive.")
	require.NoError(t, err)
	assert.Positive(t, id)

	messages, err := store.Messages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Ana", messages[0].Name)
	assert.Equal(t, "ana@example.com", messages[0].Email)
	assert.False(t, messages[0].CreatedAt.IsZero())
}

func TestSubscribeIsIdempotent(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.Subscribe(ctx, "ana@example.com"))
	require.NoError(t, store.Subscribe(ctx, "ana@example.com"))
	require.NoError(t, store.Subscribe(ctx, "bea@example.com"))

	emails, err := store.Subscribers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ana@example.com", "bea@example.com"}, emails)
}
