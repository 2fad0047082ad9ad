// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package interceptor

import (
	"sync"

	"github.com/MKhiriev/go-intercept/models"
	"github.com/rs/zerolog"
)

// Registry stores ordered request and response interceptor lists keyed by
// [Scope]. The zero value is not usable; construct it with [New] or obtain
// the process-wide instance with [Create] or [Instance].
//
// Registry is safe for concurrent use. Reductions take a snapshot of the
// applicable lists, so interceptors appended while a reduction runs only
// apply to later exchanges.
type Registry struct {
	mu       sync.RWMutex
	request  map[Scope][]RequestInterceptor
	response map[Scope][]ResponseInterceptor

	logger zerolog.Logger
}

// Option configures a Registry built by [New] or [Create].
type Option func(*Registry)

// WithRequestInterceptors seeds the global request list.
func WithRequestInterceptors(interceptors ...RequestInterceptor) Option {
	return func(r *Registry) {
		r.request[ScopeGlobal] = append(r.request[ScopeGlobal], interceptors...)
	}
}

// WithResponseInterceptors seeds the global response list.
func WithResponseInterceptors(interceptors ...ResponseInterceptor) Option {
	return func(r *Registry) {
		r.response[ScopeGlobal] = append(r.response[ScopeGlobal], interceptors...)
	}
}

// WithLogger sets the logger used for registry diagnostics. The default
// discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New builds a standalone Registry. Only the global lists can be seeded
// through options; method-scoped lists always start empty.
func New(opts ...Option) *Registry {
	r := &Registry{
		request:  make(map[Scope][]RequestInterceptor, len(methodScopes)+1),
		response: make(map[Scope][]ResponseInterceptor, len(methodScopes)+1),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddRequestInterceptor appends interceptors to the request list of scope,
// after any already registered, in the order given.
func (r *Registry) AddRequestInterceptor(scope Scope, interceptors ...RequestInterceptor) {
	if len(interceptors) == 0 {
		return
	}
	r.mu.Lock()
	r.request[scope] = append(r.request[scope], interceptors...)
	size := len(r.request[scope])
	r.mu.Unlock()

	r.logger.Debug().
		Str("kind", KindRequest.String()).
		Str("scope", scope.String()).
		Int("added", len(interceptors)).
		Int("total", size).
		Msg("interceptors registered")
}

// AddResponseInterceptor appends interceptors to the response list of scope,
// after any already registered, in the order given.
func (r *Registry) AddResponseInterceptor(scope Scope, interceptors ...ResponseInterceptor) {
	if len(interceptors) == 0 {
		return
	}
	r.mu.Lock()
	r.response[scope] = append(r.response[scope], interceptors...)
	size := len(r.response[scope])
	r.mu.Unlock()

	r.logger.Debug().
		Str("kind", KindResponse.String()).
		Str("scope", scope.String()).
		Int("added", len(interceptors)).
		Int("total", size).
		Msg("interceptors registered")
}

// RequestInterceptors returns the stored request list for scope. The slice
// is not copied; callers must not modify it.
func (r *Registry) RequestInterceptors(scope Scope) []RequestInterceptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.request[scope]
}

// ResponseInterceptors returns the stored response list for scope. The slice
// is not copied; callers must not modify it.
func (r *Registry) ResponseInterceptors(scope Scope) []ResponseInterceptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.response[scope]
}

// Len reports how many interceptors are registered for kind and scope.
func (r *Registry) Len(kind Kind, scope Scope) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	switch kind {
	case KindRequest:
		return len(r.request[scope])
	case KindResponse:
		return len(r.response[scope])
	default:
		return 0
	}
}

// ReduceRequest runs the global request list on req, then the list of the
// scope matching req.Method, if any. Methods outside the known scopes only
// get the global list.
func (r *Registry) ReduceRequest(req *models.Request) (*models.Request, error) {
	var method string
	if req != nil {
		method = req.Method
	}
	global, scoped := r.requestChains(method)

	out, err := Execute(req, global)
	if err != nil {
		return nil, err
	}
	return Execute(out, scoped)
}

// ReduceResponse runs the global response list on resp, then the list of
// the scope matching the originating request's method, if any.
func (r *Registry) ReduceResponse(resp *models.Response) (*models.Response, error) {
	global, scoped := r.responseChains(resp.Method())

	out, err := Execute(resp, global)
	if err != nil {
		return nil, err
	}
	return Execute(out, scoped)
}

func (r *Registry) requestChains(method string) (global, scoped []RequestInterceptor) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	global = r.request[ScopeGlobal]
	if scope, ok := ScopeForMethod(method); ok {
		scoped = r.request[scope]
	}
	return global, scoped
}

func (r *Registry) responseChains(method string) (global, scoped []ResponseInterceptor) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	global = r.response[ScopeGlobal]
	if scope, ok := ScopeForMethod(method); ok {
		scoped = r.response[scope]
	}
	return global, scoped
}
