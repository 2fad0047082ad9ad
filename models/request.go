// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"context"
	"net/http"
	"time"
)

// ResponseType tells the transport how to decode a response body into
// [Response.Value].
type ResponseType string

const (
	// ResponseTypeJSON decodes the body with encoding/json into an any value.
	ResponseTypeJSON ResponseType = "json"
	// ResponseTypeText exposes the body as a string.
	ResponseTypeText ResponseType = "text"
	// ResponseTypeBytes keeps the raw body. It is the default.
	ResponseTypeBytes ResponseType = "bytes"
)

// Request is an outgoing HTTP exchange as seen by the interceptor pipeline.
// Request interceptors receive it before the transport serializes it, so
// every exported field may be rewritten.
type Request struct {
	// Method is the HTTP method ("GET", "POST", ...). It drives scope
	// resolution and is matched exactly, without case folding.
	Method string `json:"method"`

	// URL is either absolute or relative to the transport's base URL.
	URL string `json:"url"`

	// Headers are sent as-is. Interceptors may add to or replace them.
	Headers http.Header `json:"headers,omitempty"`

	// Body is serialized by the transport: []byte and string are sent
	// verbatim, everything else is encoded as JSON.
	Body any `json:"body,omitempty"`

	// Timeout bounds the network call. Zero means the transport default.
	Timeout time.Duration `json:"timeout,omitempty"`

	// ResponseType selects how the response body is decoded.
	ResponseType ResponseType `json:"response_type,omitempty"`

	ctx context.Context
}

// NewRequest builds a Request bound to ctx with an empty header set.
func NewRequest(ctx context.Context, method, url string) *Request {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Request{
		Method:  method,
		URL:     url,
		Headers: make(http.Header),
		ctx:     ctx,
	}
}

// Context returns the request's context, or context.Background when none
// was attached.
func (r *Request) Context() context.Context {
	if r.ctx != nil {
		return r.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of r bound to ctx.
func (r *Request) WithContext(ctx context.Context) *Request {
	if ctx == nil {
		panic("nil context")
	}
	r2 := new(Request)
	*r2 = *r
	r2.ctx = ctx
	return r2
}

// Header returns the first value stored under key, tolerating a nil header map.
func (r *Request) Header(key string) string {
	if r.Headers == nil {
		return ""
	}
	return r.Headers.Get(key)
}

// SetHeader sets key to value, allocating the header map when needed.
func (r *Request) SetHeader(key, value string) {
	if r.Headers == nil {
		r.Headers = make(http.Header)
	}
	r.Headers.Set(key, value)
}
