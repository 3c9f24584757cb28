package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/demohost/internal/database/repository"
)

func TestMigrationsAndSeedAreIdempotent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrationsWithDB(db))
	require.NoError(t, RunMigrationsWithDB(db), "second run is a no-op")

	require.NoError(t, SeedDefaults(ctx, db))
	repo := repository.NewAppStateRepo(db)
	first, err := repo.Get(ctx, InstallIDKey)
	require.NoError(t, err)
	require.NotNil(t, first)
	require.Len(t, first.Value, 36)

	require.NoError(t, SeedDefaults(ctx, db))
	second, err := repo.Get(ctx, InstallIDKey)
	require.NoError(t, err)
	require.Equal(t, first.Value, second.Value)

	var one int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT 1").Scan(&one), "db still usable after migrating through it")
}
