package sqlstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/cineticket/internal/adapter/repository/sqlstore"
	"github.com/srgjo27/cineticket/internal/platform/database"
)

func newStore(t *testing.T) *sqlstore.Store {
	t.Helper()
	db, err := database.Open(database.Config{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "kv.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := sqlstore.NewStore(db)
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestStore_Upsert(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, ok, err := s.Get(ctx, "rating:m1:u1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "rating:m1:u1", "8"))
	require.NoError(t, s.Set(ctx, "rating:m1:u1", "6"))

	v, ok, err := s.Get(ctx, "rating:m1:u1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "6", v)
}

func TestStore_KeysAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	for _, k := range []string{"rating:m1:u2", "rating:m1:u1", "rating:m10:u1", "reviews:m1"} {
		require.NoError(t, s.Set(ctx, k, "x"))
	}

	keys, err := s.Keys(ctx, "rating:m1:")
	require.NoError(t, err)
	assert.Equal(t, []string{"rating:m1:u1", "rating:m1:u2"}, keys)

	require.NoError(t, s.Delete(ctx, "rating:m1:u1", "reviews:m1"))

	keys, err = s.Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"rating:m1:u2", "rating:m10:u1"}, keys)
}

func TestStore_KeysEscapesWildcards(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Set(ctx, "a_b", "1"))
	require.NoError(t, s.Set(ctx, "axb", "2"))

	keys, err := s.Keys(ctx, "a_")
	require.NoError(t, err)
	assert.Equal(t, []string{"a_b"}, keys)
}
