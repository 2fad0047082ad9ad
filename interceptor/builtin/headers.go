// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builtin

import (
	"net/http"

	"github.com/MKhiriev/go-intercept/interceptor"
	"github.com/MKhiriev/go-intercept/models"
)

// DefaultHeaders copies headers onto every request that does not already
// carry them. Headers set by the caller win.
func DefaultHeaders(headers http.Header) interceptor.RequestInterceptor {
	defaults := headers.Clone()
	return func(req *models.Request) (*models.Request, error) {
		if req == nil {
			return nil, nil
		}
		for key, values := range defaults {
			if req.Header(key) != "" {
				continue
			}
			for _, v := range values {
				if req.Headers == nil {
					req.Headers = make(http.Header)
				}
				req.Headers.Add(key, v)
			}
		}
		return req, nil
	}
}

// UserAgent sets the User-Agent header unless the request already has one.
func UserAgent(agent string) interceptor.RequestInterceptor {
	if agent == "" {
		return passRequest
	}
	return DefaultHeaders(http.Header{"User-Agent": {agent}})
}

func passRequest(req *models.Request) (*models.Request, error) {
	return req, nil
}
