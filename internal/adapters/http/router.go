package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dukahub/pos-terminal-service/internal/application"
)

// Handler is the HTTP adapter entrypoint for terminal use-cases.
// Keeping only application dependency here preserves clean adapter boundaries.
type Handler struct {
	service *application.Service
}

// NewHandler constructs an HTTP handler bound to application service.
func NewHandler(service *application.Service) *Handler {
	return &Handler{service: service}
}

// NewRouter registers terminal HTTP routes and middleware stack.
// Centralizing routes here ensures consistent auth and error behavior across endpoints.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)
	r.Get("/.well-known/jwks.json", handler.jwks)

	r.Route("/pos/v1", func(r chi.Router) {
		r.Post("/login", handler.posLogin)
		r.Get("/devices/{device_uuid}/status", handler.deviceStatus)

		r.Group(func(r chi.Router) {
			r.Use(handler.authMiddleware)
			r.Post("/logout", handler.posLogout)
			r.Get("/session", handler.session)
			r.Get("/shifts", handler.openShifts)
		})
	})

	return r
}
