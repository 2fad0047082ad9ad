// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package interceptor

import (
	"sync"

	"github.com/MKhiriev/go-intercept/models"
)

var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
)

// Create returns the process-wide Registry, building it from opts on the
// first call. Once it exists, later calls return the same instance and
// ignore opts entirely: initial interceptors passed to a second Create never
// reach any list.
func Create(opts ...Option) *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultRegistry != nil {
		if len(opts) > 0 {
			defaultRegistry.logger.Debug().
				Int("ignored_options", len(opts)).
				Msg("interceptor registry already created, options ignored")
		}
		return defaultRegistry
	}

	defaultRegistry = New(opts...)
	return defaultRegistry
}

// Instance returns the process-wide Registry, creating an empty one when
// none exists yet.
func Instance() *Registry {
	return Create()
}

// HasInstance reports whether the process-wide Registry has been created.
func HasInstance() bool {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultRegistry != nil
}

// Reset drops the process-wide Registry so the next Create or Instance
// builds a fresh one. Registries already handed out keep working but are no
// longer the default. Intended for test isolation.
func Reset() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = nil
}

// ReduceRequestInterceptors reduces req through the process-wide Registry.
// Transports call it once, right before sending.
func ReduceRequestInterceptors(req *models.Request) (*models.Request, error) {
	return Instance().ReduceRequest(req)
}

// ReduceResponseInterceptors reduces resp through the process-wide Registry.
// Transports call it once, after the exchange completes or fails and before
// handing the result to the caller.
func ReduceResponseInterceptors(resp *models.Response) (*models.Response, error) {
	return Instance().ReduceResponse(resp)
}
