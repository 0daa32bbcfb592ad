// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/media"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/middleware"
	"github.com/taibuivan/folio/internal/platform/sec"
)

const testMarker = "admin-token"

type fixedMarker struct{}

func (fixedMarker) Authorize(ctx context.Context, marker string) (*sec.Identity, error) {
	if marker != testMarker {
		return nil, apperr.Unauthorized("Invalid marker")
	}
	return sec.Admin("admin@folio.dev"), nil
}

func newRouter(f fixture) http.Handler {
	return media.NewHandler(f.service, middleware.RequireAdmin(fixedMarker{})).Routes()
}

func multipartBody(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func send(handler http.Handler, request *http.Request, admin bool) *httptest.ResponseRecorder {
	if admin {
		request.Header.Set("token", testMarker)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func uploadRequest(t *testing.T, filename, contentType string, data []byte) *http.Request {
	body, formType := multipartBody(t, "file", filename, contentType, data)
	request := httptest.NewRequest(http.MethodPost, "/upload", body)
	request.Header.Set("Content-Type", formType)
	return request
}

func TestHTTP_UploadListDelete(t *testing.T) {
	f := newFixture(media.Options{MaxBytes: maxBytes})
	router := newRouter(f)

	recorder := send(router, uploadRequest(t, "cover.png", "image/png", pngBytes(t, 5, 5)), true)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var uploaded struct {
		ID  int64  `json:"id"`
		URL string `json:"url"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&uploaded))
	assert.Positive(t, uploaded.ID)
	assert.Contains(t, uploaded.URL, "https://cdn.folio.dev/media/")

	recorder = send(router, httptest.NewRequest(http.MethodGet, "/", nil), true)
	require.Equal(t, http.StatusOK, recorder.Code)

	var listed []map[string]any
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "cover.png", listed[0]["filename"])
	assert.Equal(t, uploaded.URL, listed[0]["url"])
	assert.NotEmpty(t, listed[0]["uploaded_at"])

	recorder = send(router, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/%d", uploaded.ID), nil), true)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"ok":true}`, recorder.Body.String())

	recorder = send(router, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/%d", uploaded.ID), nil), true)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHTTP_RequiresMarker(t *testing.T) {
	f := newFixture(media.Options{MaxBytes: maxBytes})
	router := newRouter(f)

	requests := []*http.Request{
		uploadRequest(t, "a.png", "image/png", pngBytes(t, 1, 1)),
		httptest.NewRequest(http.MethodGet, "/", nil),
		httptest.NewRequest(http.MethodDelete, "/1", nil),
	}

	for _, request := range requests {
		assert.Equal(t, http.StatusForbidden, send(router, request, false).Code, request.Method)
	}
	assert.Zero(t, f.store.Len())
}

func TestHTTP_UploadRejections(t *testing.T) {
	f := newFixture(media.Options{MaxBytes: 1024})
	router := newRouter(f)

	t.Run("gif", func(t *testing.T) {
		recorder := send(router, uploadRequest(t, "a.gif", "image/gif", []byte("GIF89a")), true)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("too_large", func(t *testing.T) {
		recorder := send(router, uploadRequest(t, "big.png", "image/png", noisyPNGBytes(t, 256, 256)), true)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("missing_file_part", func(t *testing.T) {
		body, formType := multipartBody(t, "attachment", "a.png", "image/png", pngBytes(t, 1, 1))
		request := httptest.NewRequest(http.MethodPost, "/upload", body)
		request.Header.Set("Content-Type", formType)
		assert.Equal(t, http.StatusBadRequest, send(router, request, true).Code)
	})

	t.Run("not_multipart", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader([]byte(`{}`)))
		request.Header.Set("Content-Type", "application/json")
		assert.Equal(t, http.StatusBadRequest, send(router, request, true).Code)
	})

	recorder := send(router, httptest.NewRequest(http.MethodGet, "/", nil), true)
	assert.JSONEq(t, `[]`, recorder.Body.String())
}

func TestHTTP_UploadStoreFailure(t *testing.T) {
	repository := media.NewMemoryRepository()
	store := failingStore{}
	service := media.NewService(repository, store, media.Options{MaxBytes: maxBytes}, discardLogger())
	router := media.NewHandler(service, middleware.RequireAdmin(fixedMarker{})).Routes()

	recorder := send(router, uploadRequest(t, "a.png", "image/png", pngBytes(t, 1, 1)), true)
	assert.Equal(t, http.StatusBadGateway, recorder.Code)

	items, err := repository.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}
