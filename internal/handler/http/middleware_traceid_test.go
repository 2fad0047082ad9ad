// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-intercept/internal/logger"
	"github.com/MKhiriev/go-intercept/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTraceParent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

// newTestHandler creates a Handler with a nop logger.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name          string
		headers       map[string]string
		wantTraceID   string
		wantValidUUID bool
	}{
		{
			name:        "X-Trace-ID is reused",
			headers:     map[string]string{"X-Trace-ID": "my-custom-trace-id"},
			wantTraceID: "my-custom-trace-id",
		},
		{
			name:        "traceparent wins over X-Trace-ID",
			headers:     map[string]string{"Traceparent": testTraceParent, "X-Trace-ID": "ignored"},
			wantTraceID: "4bf92f3577b34da6a3ce929d0e0e4736",
		},
		{
			name:        "malformed traceparent falls back to X-Trace-ID",
			headers:     map[string]string{"Traceparent": "garbage", "X-Trace-ID": "fallback"},
			wantTraceID: "fallback",
		},
		{
			name:          "no headers generates UUID",
			wantValidUUID: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			var ctxTraceID string
			var ok bool

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxTraceID, ok = utils.GetTraceIDFromContext(r.Context())
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/echo", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get("X-Trace-ID")
			require.NotEmpty(t, got)
			require.True(t, ok)
			assert.Equal(t, got, ctxTraceID)
			assert.Equal(t, http.StatusTeapot, rr.Code)

			if tt.wantValidUUID {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantTraceID, got)
		})
	}
}

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/echo", nil))

		id := rr.Header().Get("X-Trace-ID")
		_, duplicate := seen[id]
		require.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_ChildLoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.Header.Set("X-Trace-ID", "abc-123")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"abc-123"`)
	assert.Contains(t, buf.String(), `"message":"inside"`)
}
