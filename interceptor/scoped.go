// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package interceptor

// AddGlobalRequestInterceptor appends interceptors applied to every request before dispatch.
func (r *Registry) AddGlobalRequestInterceptor(interceptors ...RequestInterceptor) {
	r.AddRequestInterceptor(ScopeGlobal, interceptors...)
}

// AddGetRequestInterceptor appends interceptors applied to GET requests before dispatch.
func (r *Registry) AddGetRequestInterceptor(interceptors ...RequestInterceptor) {
	r.AddRequestInterceptor(ScopeGet, interceptors...)
}

// AddPostRequestInterceptor appends interceptors applied to POST requests before dispatch.
func (r *Registry) AddPostRequestInterceptor(interceptors ...RequestInterceptor) {
	r.AddRequestInterceptor(ScopePost, interceptors...)
}

// AddPutRequestInterceptor appends interceptors applied to PUT requests before dispatch.
func (r *Registry) AddPutRequestInterceptor(interceptors ...RequestInterceptor) {
	r.AddRequestInterceptor(ScopePut, interceptors...)
}

// AddDeleteRequestInterceptor appends interceptors applied to DELETE requests before dispatch.
func (r *Registry) AddDeleteRequestInterceptor(interceptors ...RequestInterceptor) {
	r.AddRequestInterceptor(ScopeDelete, interceptors...)
}

// AddOptionsRequestInterceptor appends interceptors applied to OPTIONS requests before dispatch.
func (r *Registry) AddOptionsRequestInterceptor(interceptors ...RequestInterceptor) {
	r.AddRequestInterceptor(ScopeOptions, interceptors...)
}

// AddTraceRequestInterceptor appends interceptors applied to TRACE requests before dispatch.
func (r *Registry) AddTraceRequestInterceptor(interceptors ...RequestInterceptor) {
	r.AddRequestInterceptor(ScopeTrace, interceptors...)
}

// AddGlobalResponseInterceptor appends interceptors applied to every response.
func (r *Registry) AddGlobalResponseInterceptor(interceptors ...ResponseInterceptor) {
	r.AddResponseInterceptor(ScopeGlobal, interceptors...)
}

// AddGetResponseInterceptor appends interceptors applied to responses to GET requests.
func (r *Registry) AddGetResponseInterceptor(interceptors ...ResponseInterceptor) {
	r.AddResponseInterceptor(ScopeGet, interceptors...)
}

// AddPostResponseInterceptor appends interceptors applied to responses to POST requests.
func (r *Registry) AddPostResponseInterceptor(interceptors ...ResponseInterceptor) {
	r.AddResponseInterceptor(ScopePost, interceptors...)
}

// AddPutResponseInterceptor appends interceptors applied to responses to PUT requests.
func (r *Registry) AddPutResponseInterceptor(interceptors ...ResponseInterceptor) {
	r.AddResponseInterceptor(ScopePut, interceptors...)
}

// AddDeleteResponseInterceptor appends interceptors applied to responses to DELETE requests.
func (r *Registry) AddDeleteResponseInterceptor(interceptors ...ResponseInterceptor) {
	r.AddResponseInterceptor(ScopeDelete, interceptors...)
}

// AddOptionsResponseInterceptor appends interceptors applied to responses to OPTIONS requests.
func (r *Registry) AddOptionsResponseInterceptor(interceptors ...ResponseInterceptor) {
	r.AddResponseInterceptor(ScopeOptions, interceptors...)
}

// AddTraceResponseInterceptor appends interceptors applied to responses to TRACE requests.
func (r *Registry) AddTraceResponseInterceptor(interceptors ...ResponseInterceptor) {
	r.AddResponseInterceptor(ScopeTrace, interceptors...)
}
