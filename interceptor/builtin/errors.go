// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builtin

import "errors"

var (
	// ErrInvalidToken is returned by [BearerToken] when a JWT-shaped token
	// cannot be parsed.
	ErrInvalidToken = errors.New("invalid bearer token")

	// ErrTokenExpired is returned by [BearerToken] when the token's exp claim
	// lies in the past. The request is not sent.
	ErrTokenExpired = errors.New("bearer token expired")

	// ErrRateLimited wraps the limiter error returned by [RateLimit] when the
	// request context ends before a token becomes available.
	ErrRateLimited = errors.New("rate limit wait aborted")
)
