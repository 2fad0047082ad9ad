// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builtin

import (
	"github.com/MKhiriev/go-intercept/interceptor"
	"github.com/MKhiriev/go-intercept/models"
	"github.com/rs/zerolog"
)

// LogRequest writes one debug entry per outgoing request.
func LogRequest(logger zerolog.Logger) interceptor.RequestInterceptor {
	return func(req *models.Request) (*models.Request, error) {
		if req == nil {
			return nil, nil
		}
		logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL).
			Str("trace_id", req.Header(HeaderTraceID)).
			Msg("outgoing request")
		return req, nil
	}
}

// LogResponse writes one entry per completed exchange: info for 2xx,
// warn for anything else, error with the cause when Err is set.
func LogResponse(logger zerolog.Logger) interceptor.ResponseInterceptor {
	return func(resp *models.Response) (*models.Response, error) {
		if resp == nil {
			return nil, nil
		}
		var event *zerolog.Event
		switch {
		case resp.Err != nil:
			event = logger.Error().Err(resp.Err)
		case resp.OK():
			event = logger.Info()
		default:
			event = logger.Warn()
		}

		url := ""
		if resp.Request != nil {
			url = resp.Request.URL
		}
		event.
			Str("method", resp.Method()).
			Str("url", url).
			Int("status", resp.Status).
			Dur("duration", resp.Duration).
			Msg("response received")
		return resp, nil
	}
}
