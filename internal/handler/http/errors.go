// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMissingSignature is reported when a verification key is configured
	// and a request with a body carries no HashSHA256 header.
	ErrMissingSignature = errors.New("missing `HashSHA256` header")

	// ErrSignatureMismatch is reported when the HashSHA256 header does not
	// match the HMAC of the body.
	ErrSignatureMismatch = errors.New("integrity check failed")

	// ErrInvalidStatusCode is reported by /status/{code} for codes outside
	// 200-599.
	ErrInvalidStatusCode = errors.New("invalid status code")
)
