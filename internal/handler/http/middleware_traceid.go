// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-intercept/interceptor/builtin"
	"github.com/MKhiriev/go-intercept/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

var traceContext = propagation.TraceContext{}

// withTraceID resolves the request's trace id, preferring a W3C traceparent,
// then X-Trace-ID, then a fresh UUID. The id is echoed in X-Trace-ID, stored
// in the request context and attached to a child logger.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := resolveTraceID(r)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx = utils.WithTraceID(l.WithContext(ctx), traceID)

		w.Header().Set(builtin.HeaderTraceID, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func resolveTraceID(r *http.Request) string {
	extracted := traceContext.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	if sc := trace.SpanContextFromContext(extracted); sc.HasTraceID() {
		return sc.TraceID().String()
	}
	if id := r.Header.Get(builtin.HeaderTraceID); id != "" {
		return id
	}
	return uuid.NewString()
}
