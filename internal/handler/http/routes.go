// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the chi router with the middleware chain and the /echo,
// /status/{code} and, when metrics are enabled, /metrics routes.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(withCompression)

	router.Group(func(r chi.Router) {
		if h.hashKey != nil {
			r.Use(h.checkSignature)
		}
		r.HandleFunc("/echo", h.echo)
		r.HandleFunc("/echo/*", h.echo)
	})
	router.HandleFunc("/status/{code}", h.status)

	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.handler())
	}

	return router
}
