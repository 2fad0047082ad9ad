// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package journal

import (
	"context"
	"time"

	"github.com/MKhiriev/go-intercept/interceptor"
	"github.com/MKhiriev/go-intercept/internal/logger"
	"github.com/MKhiriev/go-intercept/models"
	"github.com/google/uuid"
)

const saveTimeout = 5 * time.Second

// Recorder returns a response interceptor saving every exchange to store.
// The save outlives cancellation of the request context but is bounded by
// its own timeout. Save errors are logged; the response always passes
// through unchanged.
func Recorder(store Store, log *logger.Logger) interceptor.ResponseInterceptor {
	if log == nil {
		log = logger.Nop()
	}
	return func(resp *models.Response) (*models.Response, error) {
		if resp == nil {
			return nil, nil
		}
		ctx := context.Background()
		if resp.Request != nil {
			ctx = context.WithoutCancel(resp.Request.Context())
		}
		ctx, cancel := context.WithTimeout(ctx, saveTimeout)
		defer cancel()

		entry := NewEntry(newEntryID(), resp, time.Now())
		if err := store.Save(ctx, entry); err != nil {
			log.Warn().Err(err).
				Str("id", entry.ID).
				Str("method", entry.Method).
				Str("url", entry.URL).
				Msg("failed to record exchange")
		}
		return resp, nil
	}
}

func newEntryID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
