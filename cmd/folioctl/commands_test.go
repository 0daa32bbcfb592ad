// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/migration"
	"github.com/taibuivan/folio/internal/platform/sec"
)

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := newRootCmd(strings.NewReader(input), &stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestHashPassword(t *testing.T) {
	out, err := run(t, "s3cret\n", "hash-password", "--stdin")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(hash, "$2"))
	assert.True(t, sec.CheckPasswordHash("s3cret", hash))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := run(t, "\n", "hash-password", "--stdin")
	assert.ErrorIs(t, err, errEmptyPassword)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := sec.HashPassword("s3cret")
	require.NoError(t, err)

	out, err := run(t, "s3cret\n", "verify-password", "--hash", hash)
	require.NoError(t, err)
	assert.Contains(t, out, "password matches")

	_, err = run(t, "wrong\n", "verify-password", "--hash", hash)
	assert.Error(t, err)
}

func TestMigrate_RequiresDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := run(t, "", "migrate", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestFormatStatus(t *testing.T) {
	assert.Equal(t, "no migrations applied", formatStatus(migration.Status{}))
	assert.Equal(t, "version 2", formatStatus(migration.Status{Version: 2, Applied: true}))
	assert.Equal(t, "version 2 (dirty)", formatStatus(migration.Status{Version: 2, Dirty: true, Applied: true}))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "folio-api")
}
