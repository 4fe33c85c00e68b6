// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Volkov

package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	limiter := NewIPRateLimiter(
		rate.Every(time.Minute/time.Duration(max(h.authCfg.LoginRatePerMinute, 1))),
		max(h.authCfg.LoginBurst, 1),
	)

	// credential endpoints, throttled per originating address
	router.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)
	})

	// guest-facing reads
	router.Group(func(r chi.Router) {
		r.Get("/api/authors/{handle}/articles", h.listByAuthor)
		r.Get("/api/articles/{articleID}", h.viewArticle)
	})

	// owner-scoped operations behind the session guard
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/admin/articles", h.listOwn)
		r.Post("/api/admin/articles", h.publish)
		r.Put("/api/admin/articles/{articleID}", h.edit)
		r.Delete("/api/admin/articles/{articleID}", h.remove)
	})

	return router
}
