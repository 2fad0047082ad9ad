// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/http"
	"time"
)

// Response is a completed (or failed) HTTP exchange as seen by the
// interceptor pipeline.
//
// When the exchange failed, Err is non-nil and Status may be zero (network
// failure) or a non-2xx code. Response interceptors run in both cases and
// may replace or clear Err; the transport returns whatever Err holds after
// the last interceptor.
type Response struct {
	// Request is the request that produced this response, after request
	// interceptors were applied. Its Method keys response scope resolution.
	Request *Request `json:"request,omitempty"`

	// Status is the HTTP status code, or zero when no response arrived.
	Status int `json:"status"`

	// Headers are the response headers.
	Headers http.Header `json:"headers,omitempty"`

	// Body is the raw response body.
	Body []byte `json:"-"`

	// Value is Body decoded according to Request.ResponseType.
	Value any `json:"value,omitempty"`

	// Duration is the wall time spent in the network call.
	Duration time.Duration `json:"duration"`

	// Err is the failure attached to the exchange, if any.
	Err error `json:"-"`
}

// Method returns the originating request's method, or "" when the response
// has no request attached.
func (r *Response) Method() string {
	if r == nil || r.Request == nil {
		return ""
	}
	return r.Request.Method
}

// OK reports whether the exchange succeeded with a 2xx status and no error.
func (r *Response) OK() bool {
	return r.Err == nil && r.Status >= http.StatusOK && r.Status < http.StatusMultipleChoices
}
