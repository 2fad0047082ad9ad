// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the HTTP transport behind the interceptor pipeline.
//
// [HTTPClient] reduces every outgoing [models.Request] through the request
// interceptors of an [interceptor.Registry], sends it with resty, turns the
// result (or the failure) into a [models.Response] and reduces that through
// the response interceptors before handing it back.
//
// Failures are reported as sentinel errors so callers can use [errors.Is]:
// non-2xx statuses map to [ErrNotFound], [ErrConflict] and friends, timeouts
// to [ErrTimeout], other network failures to [ErrTransport].
package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-intercept/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport performs intercepted HTTP exchanges.
//
// Every method returns the reduced response together with its Err. The
// response is nil only when the request never reached the network (a
// request interceptor failed) or a response interceptor failed.
type Transport interface {
	// Do runs req through the full pipeline.
	Do(req *models.Request) (*models.Response, error)

	Get(ctx context.Context, url string, headers http.Header) (*models.Response, error)
	Post(ctx context.Context, url string, body any, headers http.Header) (*models.Response, error)
	Put(ctx context.Context, url string, body any, headers http.Header) (*models.Response, error)
	Patch(ctx context.Context, url string, body any, headers http.Header) (*models.Response, error)
	Delete(ctx context.Context, url string, headers http.Header) (*models.Response, error)

	// GetJSON issues a GET and decodes a successful JSON body into out.
	GetJSON(ctx context.Context, url string, out any, headers http.Header) error
}
