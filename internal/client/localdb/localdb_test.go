package localdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestInitDatabase_CreatesSchemaAndRepositories(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "client.db")

	repos, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	require.NotNil(t, repos.Metadata)

	// migrated table is usable straight away
	require.NoError(t, repos.Metadata.Set(ctx, "session_token", []byte("tok")))
	v, err := repos.Metadata.Get(ctx, "session_token")
	require.NoError(t, err)
	require.Equal(t, []byte("tok"), v)
}

func TestInitDatabase_MigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "client.db")

	first, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}
