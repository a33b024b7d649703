// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withClientIP,
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		middleware.Recoverer,
		middleware.Compress(5, "application/json"),
	)

	router.Get("/healthz", h.healthz)
	router.Get("/api/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	// auth routes share the per-client request throttle
	router.Route("/api/auth", func(r chi.Router) {
		r.Use(h.withThrottle)

		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.With(h.auth).Get("/me", h.me)
	})

	// public catalog
	router.Group(func(r chi.Router) {
		r.Get("/api/categories", h.listCategories)
		r.Get("/api/categories/{slug}", h.getCategory)

		r.Get("/api/projects", h.listProjects)
		r.Get("/api/projects/featured", h.featuredProjects)
		r.Get("/api/projects/{id}", h.getProject)

		r.Get("/api/search", h.search)
		r.Get("/api/search/suggestions", h.suggestions)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
