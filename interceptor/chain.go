// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package interceptor

import "github.com/MKhiriev/go-intercept/models"

// RequestInterceptor transforms a request before it is sent. Returning the
// input unchanged is valid; returning an error aborts the chain.
type RequestInterceptor func(req *models.Request) (*models.Request, error)

// ResponseInterceptor transforms a response (or a failed exchange, see
// [models.Response.Err]) before it reaches the caller.
type ResponseInterceptor func(resp *models.Response) (*models.Response, error)

// Execute threads value through chain in order, feeding each interceptor's
// result to the next, and returns the result of the last one. An empty chain
// returns value unchanged. The first error stops the chain and is returned
// as-is; the interceptors after it are not called.
func Execute[T any, F ~func(T) (T, error)](value T, chain []F) (T, error) {
	current := value
	for _, fn := range chain {
		next, err := fn(current)
		if err != nil {
			var zero T
			return zero, err
		}
		current = next
	}
	return current, nil
}
