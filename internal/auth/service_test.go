// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/folio/internal/auth"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/sec"
)

const (
	adminEmail    = "admin@folio.dev"
	adminPassword = "correct horse battery staple"
	tokenSecret   = "0123456789abcdef0123456789abcdef"
)

func credentials(t *testing.T) auth.Credentials {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.Credentials{Email: adminEmail, PasswordHash: string(hash)}
}

func newTokenGate(t *testing.T) *auth.Service {
	t.Helper()
	tokens, err := sec.NewTokenService(tokenSecret, "folio", time.Hour)
	require.NoError(t, err)
	return auth.NewTokenService(credentials(t), tokens, auth.NewMemoryEpochStore())
}

func TestAuthenticate_Rejections(t *testing.T) {
	gate := newTokenGate(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong_email", "intruder@folio.dev", adminPassword},
		{"wrong_password", adminEmail, "hunter2"},
		{"both_wrong", "x@y.z", "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := gate.Authenticate(ctx, tt.email, tt.password)
			assert.Nil(t, session)
			assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))
		})
	}
}

func TestTokenMode_LoginAuthorizeRevoke(t *testing.T) {
	gate := newTokenGate(t)
	ctx := context.Background()

	session, err := gate.Authenticate(ctx, adminEmail, adminPassword)
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	require.NotNil(t, session.ExpiresAt)
	assert.Equal(t, adminEmail, session.User.Email)
	assert.Equal(t, sec.RoleAdmin, session.User.Role)

	identity, err := gate.Authorize(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, adminEmail, identity.Email)

	epoch, err := gate.RevokeAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), epoch)

	_, err = gate.Authorize(ctx, session.Token)
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized), "revoked marker must be rejected")

	fresh, err := gate.Authenticate(ctx, adminEmail, adminPassword)
	require.NoError(t, err)
	_, err = gate.Authorize(ctx, fresh.Token)
	assert.NoError(t, err)
}

func TestTokenMode_RejectsForeignMarkers(t *testing.T) {
	gate := newTokenGate(t)
	ctx := context.Background()

	otherSigner, err := sec.NewTokenService("ffffffffffffffffffffffffffffffff", "folio", time.Hour)
	require.NoError(t, err)
	forged, _, err := otherSigner.Issue(sec.Admin(adminEmail), 0)
	require.NoError(t, err)

	sameKeyOtherSubject, err := sec.NewTokenService(tokenSecret, "folio", time.Hour)
	require.NoError(t, err)
	impostor, _, err := sameKeyOtherSubject.Issue(sec.Admin("someone@else.dev"), 0)
	require.NoError(t, err)

	for name, marker := range map[string]string{
		"empty":         "",
		"garbage":       "admin-token",
		"wrong_key":     forged,
		"wrong_subject": impostor,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := gate.Authorize(ctx, marker)
			assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))
		})
	}
}

func TestStaticMode(t *testing.T) {
	gate := auth.NewStaticService(credentials(t), "admin-token")
	ctx := context.Background()

	assert.True(t, gate.Static())

	session, err := gate.Authenticate(ctx, adminEmail, adminPassword)
	require.NoError(t, err)
	assert.Equal(t, "admin-token", session.Token)
	assert.Nil(t, session.ExpiresAt)

	_, err = gate.Authorize(ctx, "admin-token")
	assert.NoError(t, err)

	_, err = gate.Authorize(ctx, "admin-token ")
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))

	_, err = gate.RevokeAll(ctx)
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

func TestMemoryEpochStore(t *testing.T) {
	store := auth.NewMemoryEpochStore()
	ctx := context.Background()

	current, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Zero(t, current)

	next, err := store.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), next)

	current, err = store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), current)
}
