package credstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	ctx := context.Background()

	db, err := InitDatabase(ctx, "file:credstore?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSQLiteStore(db)
}

func TestSQLiteStore_EmptyByDefault(t *testing.T) {
	s := setupStore(t)

	token, err := s.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, "", token)
}

func TestSQLiteStore_SetGetOverwrite(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, "tok-1"))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)

	require.NoError(t, s.SetToken(ctx, "tok-2"))

	token, err = s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-2", token)
}

func TestSQLiteStore_Clear(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, "tok"))
	require.NoError(t, s.Clear(ctx))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "", token)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	token, err := s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "", token)

	require.NoError(t, s.SetToken(ctx, "tok"))
	token, err = s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok", token)

	require.NoError(t, s.Clear(ctx))
	token, err = s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "", token)
}
