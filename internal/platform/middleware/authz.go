// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/internal/platform/sec"
)

// MarkerVerifier checks an admin marker.
//
// Declared here rather than imported from the auth package so the gate can be
// tested with a stub and auth can depend on platform packages freely.
type MarkerVerifier interface {
	Authorize(ctx context.Context, marker string) (*sec.Identity, error)
}

// RequireAdmin rejects any request that does not present a valid marker with
// 403 before the wrapped handler runs. The verified identity is stored in the
// request context.
func RequireAdmin(verifier MarkerVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			marker := Marker(request)
			if marker == "" {
				respond.Error(writer, request, apperr.Unauthorized("Admin marker required"))
				return
			}

			identity, err := verifier.Authorize(request.Context(), marker)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}

			ctx := ctxutil.WithIdentity(request.Context(), identity)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// Marker returns the marker presented in the `token` header, falling back to
// an `Authorization: Bearer` header. It returns "" when neither is set.
func Marker(request *http.Request) string {
	if marker := strings.TrimSpace(request.Header.Get(constants.HeaderMarker)); marker != "" {
		return marker
	}

	scheme, credentials, found := strings.Cut(request.Header.Get(constants.HeaderAuthorization), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(credentials)
}
