package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/alfred-backend/internal/domain"
	"github.com/heartmarshall/alfred-backend/internal/transport/middleware"
)

// Resource is a mountable per-kind handler.
type Resource interface {
	Routes() chi.Router
}

// RouterDeps wires handlers and middleware into the HTTP router.
type RouterDeps struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Resources map[domain.Kind]Resource

	// Global middleware, outermost first.
	Global []middleware.Middleware
	// RequireUser guards /api/me and the resource routes.
	RequireUser middleware.Middleware
	// LoginLimit throttles POST /api/login.
	LoginLimit middleware.Middleware

	// Metrics is served at MetricsPath when non-nil.
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter builds the application router.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	for _, mw := range d.Global {
		r.Use(mw)
	}

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Metrics != nil {
		r.Method(http.MethodGet, d.MetricsPath, d.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.With(orPass(d.LoginLimit)).Post("/login", d.Auth.Login)
		r.Post("/logout", d.Auth.Logout)

		r.Group(func(r chi.Router) {
			r.Use(orPass(d.RequireUser))
			r.Get("/me", d.Auth.Me)
			for kind, res := range d.Resources {
				r.Mount("/"+kind.Plural(), res.Routes())
			}
		})
	})

	return r
}

func orPass(mw middleware.Middleware) middleware.Middleware {
	if mw == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return mw
}
