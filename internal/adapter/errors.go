// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors attached to [models.Response.Err] by the transport. Status
// errors wrap the trimmed response body; transport errors wrap the cause.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrTimeout        = errors.New("request timed out")
	ErrTransport      = errors.New("transport failure")
	ErrDecodeResponse = errors.New("cannot decode response body")

	ErrInvalidBaseURL = errors.New("invalid base url")
	ErrNilRequest     = errors.New("nil request")
	ErrNilResponse    = errors.New("response interceptors returned nil response")
)
