// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builtin

import (
	"net/http"

	"github.com/MKhiriev/go-intercept/interceptor"
	"github.com/MKhiriev/go-intercept/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Propagate injects the trace context carried by the request's context into
// its headers (traceparent, tracestate, baggage depending on propagator).
// A nil propagator resolves otel's global propagator on every call, so it
// picks up one installed after registration.
func Propagate(propagator propagation.TextMapPropagator) interceptor.RequestInterceptor {
	return func(req *models.Request) (*models.Request, error) {
		if req == nil {
			return nil, nil
		}
		p := propagator
		if p == nil {
			p = otel.GetTextMapPropagator()
		}
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}
		p.Inject(req.Context(), propagation.HeaderCarrier(req.Headers))
		return req, nil
	}
}
