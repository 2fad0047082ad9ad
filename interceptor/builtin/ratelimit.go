// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builtin

import (
	"fmt"

	"github.com/MKhiriev/go-intercept/interceptor"
	"github.com/MKhiriev/go-intercept/models"
	"golang.org/x/time/rate"
)

// RateLimit blocks each request until limiter grants a token. The wait is
// bound to the request context; when it ends first the request fails with
// an error wrapping [ErrRateLimited] and the cause. A nil limiter disables
// limiting.
func RateLimit(limiter *rate.Limiter) interceptor.RequestInterceptor {
	if limiter == nil {
		return passRequest
	}
	return func(req *models.Request) (*models.Request, error) {
		if req == nil {
			return nil, nil
		}
		if err := limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRateLimited, err)
		}
		return req, nil
	}
}

// NewLimiter builds a token bucket of perSecond requests per second with the
// given burst. A non-positive rate returns nil, which [RateLimit] treats as
// unlimited.
func NewLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}
