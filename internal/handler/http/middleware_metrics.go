// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type serverMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	gatherer prometheus.Gatherer
}

// WithMetrics registers the upstream's request metrics on reg and exposes
// them on GET /metrics.
func (h *Handler) WithMetrics(reg *prometheus.Registry) *Handler {
	factory := promauto.With(reg)
	h.metrics = &serverMetrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "echo_server_requests_total",
			Help: "Requests served by the echo upstream.",
		}, []string{"method", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "echo_server_request_duration_seconds",
			Help:    "Time spent serving echo upstream requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		gatherer: reg,
	}
	return h
}

func (m *serverMetrics) handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(mw, r)

		status := mw.status
		if status == 0 {
			status = http.StatusOK
		}
		h.metrics.requests.WithLabelValues(r.Method, strconv.Itoa(status)).Inc()
		h.metrics.duration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}
