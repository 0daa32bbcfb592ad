// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the admin identity gate.

There is exactly one identity: the admin account configured through the
environment. Logging in exchanges its credentials for a marker, and every
mutating API call must present a marker that passes [Service.Authorize].

Two marker strategies exist:

  - Token mode issues signed, expiring markers bound to a revocation epoch.
    [Service.RevokeAll] advances the epoch and so invalidates them all.
  - Static mode hands out one fixed marker and compares it verbatim. It keeps
    older site frontends working and cannot revoke.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/sec"
)

// Credentials identify the configured admin account.
type Credentials struct {
	Email        string
	PasswordHash string
}

// Session is the result of a successful login.
type Session struct {
	Token     string        `json:"token"`
	ExpiresAt *time.Time    `json:"expires_at,omitempty"`
	User      *sec.Identity `json:"user"`
}

// Service implements login, marker verification and revocation.
type Service struct {
	admin Credentials

	// token mode
	tokens *sec.TokenService
	epochs EpochStore

	// static mode
	staticMarker string
}

// NewTokenService creates a gate that issues signed markers.
func NewTokenService(admin Credentials, tokens *sec.TokenService, epochs EpochStore) *Service {
	return &Service{admin: admin, tokens: tokens, epochs: epochs}
}

// NewStaticService creates a gate that hands out and accepts a single fixed
// marker.
func NewStaticService(admin Credentials, marker string) *Service {
	return &Service{admin: admin, staticMarker: marker}
}

// Static reports whether the gate runs in static mode.
func (service *Service) Static() bool {
	return service.tokens == nil
}

/*
Authenticate checks the admin credentials and issues a marker.

Returns:
  - *Session: The marker and the identity it speaks for
  - error: UNAUTHORIZED when the email or password does not match
*/
func (service *Service) Authenticate(ctx context.Context, email, password string) (*Session, error) {

	// The hash comparison runs even for a wrong email so both failures cost
	// the same.
	passwordOK := sec.CheckPasswordHash(password, service.admin.PasswordHash)
	if email != service.admin.Email || !passwordOK {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "admin_login_rejected")
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	identity := sec.Admin(service.admin.Email)

	if service.Static() {
		return &Session{Token: service.staticMarker, User: identity}, nil
	}

	epoch, err := service.epochs.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth_service_epoch_failed: %w", err)
	}

	marker, expiresAt, err := service.tokens.Issue(identity, epoch)
	if err != nil {
		return nil, fmt.Errorf("auth_service_issue_failed: %w", err)
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "admin_login",
		slog.Int64("epoch", epoch),
		slog.Time("expires_at", expiresAt),
	)

	return &Session{Token: marker, ExpiresAt: &expiresAt, User: identity}, nil
}

// errMarker is the single rejection every verification failure collapses to.
var errMarker = apperr.Unauthorized("Invalid or expired admin marker")

/*
Authorize verifies a marker and returns the identity it speaks for.

Returns:
  - *sec.Identity: The admin identity
  - error: UNAUTHORIZED when the marker does not pass, or an internal error
    when the epoch store is unreachable
*/
func (service *Service) Authorize(ctx context.Context, marker string) (*sec.Identity, error) {
	if marker == "" {
		return nil, errMarker
	}

	if service.Static() {
		if !sec.EqualMarkers(marker, service.staticMarker) {
			return nil, errMarker
		}
		return sec.Admin(service.admin.Email), nil
	}

	claims, err := service.tokens.Verify(marker)
	if err != nil {
		return nil, errMarker
	}

	if claims.Subject != service.admin.Email || sec.Role(claims.Role) != sec.RoleAdmin {
		return nil, errMarker
	}

	epoch, err := service.epochs.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth_service_epoch_failed: %w", err)
	}
	if claims.Epoch != epoch {
		return nil, errMarker
	}

	return sec.Admin(claims.Subject), nil
}

// ErrStaticRevoke is returned by [Service.RevokeAll] in static mode.
var ErrStaticRevoke = apperr.ValidationError("Markers cannot be revoked in static mode")

// RevokeAll invalidates every marker issued so far and returns the new epoch.
func (service *Service) RevokeAll(ctx context.Context) (int64, error) {
	if service.Static() {
		return 0, ErrStaticRevoke
	}

	epoch, err := service.epochs.Advance(ctx)
	if err != nil {
		return 0, fmt.Errorf("auth_service_revoke_failed: %w", err)
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "admin_markers_revoked", slog.Int64("epoch", epoch))
	return epoch, nil
}

