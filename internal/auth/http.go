// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
)

// Handler exposes the gate over HTTP.
type Handler struct {
	service *Service
	guard   func(http.Handler) http.Handler
}

// NewHandler constructs a [Handler]. guard protects the routes that need a
// valid marker.
func NewHandler(service *Service, guard func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, guard: guard}
}

// Routes returns a [chi.Router] with the auth endpoints.
//
// # Endpoints
//   - POST /login  : exchanges credentials for a marker.
//   - GET  /me     : identity behind the presented marker.
//   - POST /revoke : invalidates every issued marker.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)

	router.Group(func(protected chi.Router) {
		protected.Use(handler.guard)
		protected.Get("/me", handler.me)
		protected.Post("/revoke", handler.revoke)
	})

	return router
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Credential Check ───────────────────────────────────────────────

	// Blank fields are just credentials that do not match.
	session, err := handler.service.Authenticate(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	identity := ctxutil.GetIdentity(request.Context())
	if identity == nil {
		respond.Error(writer, request, apperr.Unauthorized("Admin marker required"))
		return
	}
	respond.OK(writer, identity)
}

func (handler *Handler) revoke(writer http.ResponseWriter, request *http.Request) {
	if _, err := handler.service.RevokeAll(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Ack(writer)
}
