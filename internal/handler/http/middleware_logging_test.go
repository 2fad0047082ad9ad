// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// injectLogger puts l into the request context the way withTraceID does.
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	return r.WithContext(l.WithContext(r.Context()))
}

func newTestLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf).With().Timestamp().Logger()
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		path          string
		handlerStatus int
		handlerBody   string
		wantContains  []string
	}{
		{
			name:          "GET 200 logs at info",
			method:        http.MethodGet,
			path:          "/echo",
			handlerStatus: http.StatusOK,
			handlerBody:   "OK",
			wantContains:  []string{`"level":"info"`, `"method":"GET"`, `"uri":"/echo"`, `"status":200`, `"size":2`, `"duration":`},
		},
		{
			name:          "404 logs at warn",
			method:        http.MethodPost,
			path:          "/status/404",
			handlerStatus: http.StatusNotFound,
			wantContains:  []string{`"level":"warn"`, `"method":"POST"`, `"status":404`, `"size":0`},
		},
		{
			name:          "503 logs at error",
			method:        http.MethodDelete,
			path:          "/status/503",
			handlerStatus: http.StatusServiceUnavailable,
			handlerBody:   "down",
			wantContains:  []string{`"level":"error"`, `"status":503`, `"size":4`},
		},
		{
			name:         "no explicit status is logged as 200",
			method:       http.MethodOptions,
			path:         "/echo",
			wantContains: []string{`"level":"info"`, `"status":200`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.handlerStatus != 0 {
					w.WriteHeader(tt.handlerStatus)
				}
				if tt.handlerBody != "" {
					_, _ = w.Write([]byte(tt.handlerBody))
				}
			})

			req := injectLogger(httptest.NewRequest(tt.method, tt.path, nil), newTestLogger(&buf))
			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, req)

			for _, s := range tt.wantContains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}
