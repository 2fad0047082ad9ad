// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builtin

import (
	"github.com/MKhiriev/go-intercept/interceptor"
	"github.com/MKhiriev/go-intercept/models"
	"github.com/google/uuid"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderTraceID        = "X-Trace-ID"
)

// IdempotencyKey stamps a fresh UUIDv7 under Idempotency-Key unless the
// caller already supplied one. Register it on the POST scope to make retries
// of non-idempotent calls safe.
func IdempotencyKey() interceptor.RequestInterceptor {
	return stampID(HeaderIdempotencyKey)
}

// TraceID stamps a fresh UUIDv7 under X-Trace-ID unless one is present. The
// echo server reads the same header in its trace middleware.
func TraceID() interceptor.RequestInterceptor {
	return stampID(HeaderTraceID)
}

func stampID(header string) interceptor.RequestInterceptor {
	return func(req *models.Request) (*models.Request, error) {
		if req == nil {
			return nil, nil
		}
		if req.Header(header) == "" {
			req.SetHeader(header, newID())
		}
		return req, nil
	}
}

func newID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
