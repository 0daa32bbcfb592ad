// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/folio/internal/api"
	"github.com/taibuivan/folio/internal/auth"
	"github.com/taibuivan/folio/internal/content"
	"github.com/taibuivan/folio/internal/media"
	"github.com/taibuivan/folio/internal/platform/middleware"
	"github.com/taibuivan/folio/internal/platform/objectstore"
	"github.com/taibuivan/folio/internal/platform/sec"
)

type settings struct{}

func (settings) IsDevelopment() bool      { return true }
func (settings) AllowedOrigins() []string { return nil }
func (settings) ListenAddr() string       { return ":0" }

func newTestServer(t *testing.T, checks ...api.Check) http.Handler {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	tokens, err := sec.NewTokenService("0123456789abcdef0123456789abcdef", "folio", time.Hour)
	require.NoError(t, err)

	gate := auth.NewTokenService(auth.Credentials{Email: "admin@folio.dev", PasswordHash: string(hash)}, tokens, auth.NewMemoryEpochStore())
	guard := middleware.RequireAdmin(gate)

	contentService := content.NewService(content.NewMemoryRepository(), logger)
	mediaService := media.NewService(
		media.NewMemoryRepository(),
		objectstore.NewMemoryStore("http://localhost:9000", "media"),
		media.Options{MaxBytes: 1 << 20},
		logger,
	)

	liveness, readiness := api.NewHealthHandlers(checks, logger)

	server := api.NewServer(ctx, settings{}, logger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(gate, guard),
		Content:   content.NewHandler(contentService, guard),
		Media:     media.NewHandler(mediaService, guard),
	})
	return server.Handler()
}

func call(handler http.Handler, method, path, body, marker string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.RemoteAddr = "127.0.0.1:40000"
	if marker != "" {
		request.Header.Set("token", marker)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestServer_Root(t *testing.T) {
	handler := newTestServer(t)

	recorder := call(handler, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"msg":"Backend up!"}`, recorder.Body.String())
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestServer_AdminFlow(t *testing.T) {
	handler := newTestServer(t)

	recorder := call(handler, http.MethodPost, "/api/content/chapters", `{"title":"Intro"}`, "")
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = call(handler, http.MethodPost, "/api/auth/login", `{"email":"admin@folio.dev","password":"s3cret"}`, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var session struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&session))

	recorder = call(handler, http.MethodPost, "/api/content/chapters", `{"title":"Intro","order":1}`, session.Token)
	require.Equal(t, http.StatusOK, recorder.Code)
	recorder = call(handler, http.MethodPost, "/api/content/chapters", `{"title":"Setup","order":0}`, session.Token)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = call(handler, http.MethodGet, "/api/content/chapters", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var chapters []content.Chapter
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&chapters))
	require.Len(t, chapters, 2)
	assert.Equal(t, "Setup", chapters[0].Title)
	assert.Equal(t, "Intro", chapters[1].Title)

	recorder = call(handler, http.MethodGet, "/api/media/", "", session.Token)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())

	recorder = call(handler, http.MethodPost, "/api/auth/revoke", "", session.Token)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = call(handler, http.MethodPost, "/api/content/chapters", `{"title":"Late"}`, session.Token)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestServer_Health(t *testing.T) {
	handler := newTestServer(t)

	recorder := call(handler, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = call(handler, http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ready","checks":[]}`, recorder.Body.String())
}

func TestServer_ReadinessDegraded(t *testing.T) {
	handler := newTestServer(t,
		api.Check{Name: "postgres", Probe: func(context.Context) error { return nil }},
		api.Check{Name: "redis", Probe: func(context.Context) error { return errors.New("dial tcp: refused") }},
	)

	recorder := call(handler, http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var body struct {
		Status string `json:"status"`
		Checks []struct {
			Name string `json:"name"`
			OK   bool   `json:"ok"`
		} `json:"checks"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, "degraded", body.Status)
	require.Len(t, body.Checks, 2)
	assert.True(t, body.Checks[0].OK)
	assert.False(t, body.Checks[1].OK)
}
