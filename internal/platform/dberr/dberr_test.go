// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "Chapter", "find chapter"))

	notFound := dberr.Wrap(pgx.ErrNoRows, "Chapter", "find chapter")
	assert.True(t, apperr.HasCode(notFound, apperr.CodeNotFound))
	assert.Equal(t, "Chapter not found", notFound.Error())

	boom := errors.New("connection reset")
	wrapped := dberr.Wrap(boom, "Chapter", "find chapter")
	assert.ErrorIs(t, wrapped, boom)
	assert.Nil(t, apperr.As(wrapped))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"})
	assert.True(t, dberr.IsForeignKeyViolation(fk))

	unique := &pgconn.PgError{Code: "23505"}
	assert.False(t, dberr.IsForeignKeyViolation(unique))
	assert.False(t, dberr.IsForeignKeyViolation(errors.New("plain")))
}
