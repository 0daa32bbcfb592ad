// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPgx5DSN(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@db:5432/folio":   "pgx5://u:p@db:5432/folio",
		"postgresql://u:p@db:5432/folio": "pgx5://u:p@db:5432/folio",
		"pgx5://u:p@db:5432/folio":       "pgx5://u:p@db:5432/folio",
		"host=db user=u":                 "host=db user=u",
	}

	for in, want := range tests {
		assert.Equal(t, want, ToPgx5DSN(in), in)
	}
}

/*
TestEmbeddedFiles_Paired checks every up migration has a matching down.
*/
func TestEmbeddedFiles_Paired(t *testing.T) {
	entries, err := fs.ReadDir(migrationFiles, "files")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	names := map[string]bool{}
	for _, entry := range entries {
		names[entry.Name()] = true
	}

	for name := range names {
		if base, ok := strings.CutSuffix(name, ".up.sql"); ok {
			assert.True(t, names[base+".down.sql"], "missing down for %s", name)
		}
	}
}

/*
TestEmbeddedFiles_CascadeDelete guards the page → chapter cascade.
*/
func TestEmbeddedFiles_CascadeDelete(t *testing.T) {
	body, err := fs.ReadFile(migrationFiles, "files/000001_create_content.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "REFERENCES content.chapter (id) ON DELETE CASCADE")
}
