// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/go-intercept/interceptor"
	"github.com/MKhiriev/go-intercept/interceptor/builtin"
	"github.com/MKhiriev/go-intercept/internal/config"
	"github.com/MKhiriev/go-intercept/internal/journal"
	"github.com/MKhiriev/go-intercept/internal/logger"
)

// Pipeline holds the optional collaborators of the stock interceptors.
// Nil fields disable the interceptor they feed.
type Pipeline struct {
	Metrics *builtin.Metrics
	Journal journal.Store
	Logger  *logger.Logger
}

// Install registers the stock interceptors on reg in execution order.
//
// Request side, global: User-Agent, trace id, trace-context propagation,
// bearer token, rate limit, signature and a debug log line. POST requests
// also get an Idempotency-Key. Response side, global: metrics, journal and
// a log line.
func (p Pipeline) Install(reg *interceptor.Registry, cfg config.Client) {
	log := p.Logger
	if log == nil {
		log = logger.Nop()
	}

	reg.AddGlobalRequestInterceptor(
		builtin.UserAgent(cfg.UserAgent),
		builtin.TraceID(),
		builtin.Propagate(nil),
		builtin.BearerToken(cfg.BearerToken),
		builtin.RateLimit(builtin.NewLimiter(cfg.RateLimit, cfg.RateBurst)),
		builtin.Sign(cfg.HashKey),
		builtin.LogRequest(log.Logger),
	)
	reg.AddPostRequestInterceptor(builtin.IdempotencyKey())

	if p.Metrics != nil {
		reg.AddGlobalResponseInterceptor(p.Metrics.Observe())
	}
	if p.Journal != nil {
		reg.AddGlobalResponseInterceptor(journal.Recorder(p.Journal, log))
	}
	reg.AddGlobalResponseInterceptor(builtin.LogResponse(log.Logger))
}
