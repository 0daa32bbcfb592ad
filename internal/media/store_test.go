// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/media"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/migration"
	pgstore "github.com/taibuivan/folio/internal/platform/postgres"
)

// testDatabaseEnv names a disposable database. Its media table is truncated
// by every run.
const testDatabaseEnv = "FOLIO_TEST_DATABASE_URL"

func newPostgresRepository(t *testing.T) media.Repository {
	t.Helper()

	dsn := os.Getenv(testDatabaseEnv)
	if dsn == "" {
		t.Skipf("%s not set", testDatabaseEnv)
	}

	ctx := context.Background()
	require.NoError(t, migration.RunUp(dsn, discardLogger()))

	pool, err := pgstore.NewPool(ctx, dsn, 4, discardLogger())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, "TRUNCATE media.asset RESTART IDENTITY")
	require.NoError(t, err)

	return media.NewPostgresRepository(pool)
}

/*
TestRepository_Contract runs the registry contract against every backend.
*/
func TestRepository_Contract(t *testing.T) {
	backends := []struct {
		name string
		open func(t *testing.T) media.Repository
	}{
		{"memory", func(t *testing.T) media.Repository { return media.NewMemoryRepository() }},
		{"postgres", newPostgresRepository},
	}

	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			repository := backend.open(t)
			ctx := context.Background()

			items, err := repository.List(ctx)
			require.NoError(t, err)
			assert.NotNil(t, items)
			assert.Empty(t, items)

			older := &media.Media{Filename: "a.png", StorageKey: "k1.png", URL: "http://cdn/media/k1.png", ContentType: "image/png", SizeBytes: 10, Width: 1, Height: 1}
			newer := &media.Media{Filename: "a.png", StorageKey: "k2.png", URL: "http://cdn/media/k2.png", ContentType: "image/png", SizeBytes: 20, Width: 2, Height: 2}
			require.NoError(t, repository.Create(ctx, older))
			require.NoError(t, repository.Create(ctx, newer))
			assert.Positive(t, older.ID)
			assert.False(t, older.UploadedAt.IsZero())

			items, err = repository.List(ctx)
			require.NoError(t, err)
			require.Len(t, items, 2)
			assert.Equal(t, newer.ID, items[0].ID)
			assert.Equal(t, older.ID, items[1].ID)

			found, err := repository.Find(ctx, newer.ID)
			require.NoError(t, err)
			assert.Equal(t, "k2.png", found.StorageKey)
			assert.Equal(t, 2, found.Width)

			require.NoError(t, repository.Delete(ctx, older.ID))

			err = repository.Delete(ctx, older.ID)
			assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

			_, err = repository.Find(ctx, older.ID)
			assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
		})
	}
}
