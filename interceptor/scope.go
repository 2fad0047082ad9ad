// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package interceptor

import "net/http"

// Kind distinguishes request interceptor lists from response interceptor lists.
type Kind int

const (
	// KindRequest selects interceptors applied before dispatch.
	KindRequest Kind = iota
	// KindResponse selects interceptors applied after the exchange.
	KindResponse
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindResponse:
		return "response"
	default:
		return "unknown"
	}
}

// Scope keys an interceptor list. Method scopes carry the HTTP method they
// match; ScopeGlobal applies to every exchange.
type Scope string

const (
	ScopeGlobal  Scope = "GLOBAL"
	ScopeGet     Scope = http.MethodGet
	ScopePost    Scope = http.MethodPost
	ScopePut     Scope = http.MethodPut
	ScopeDelete  Scope = http.MethodDelete
	ScopeOptions Scope = http.MethodOptions
	ScopeTrace   Scope = http.MethodTrace
)

// String implements fmt.Stringer.
func (s Scope) String() string {
	return string(s)
}

// methodScopes is the resolver table. Adding a method scope means adding a
// constant above and an entry here.
var methodScopes = map[string]Scope{
	http.MethodGet:     ScopeGet,
	http.MethodPost:    ScopePost,
	http.MethodPut:     ScopePut,
	http.MethodDelete:  ScopeDelete,
	http.MethodOptions: ScopeOptions,
	http.MethodTrace:   ScopeTrace,
}

// ScopeForMethod resolves an HTTP method to its scope. Matching is exact and
// case-sensitive: "get" and unlisted methods such as "PATCH" report false.
func ScopeForMethod(method string) (Scope, bool) {
	scope, ok := methodScopes[method]
	return scope, ok
}

// Scopes lists every known scope, ScopeGlobal first.
func Scopes() []Scope {
	return []Scope{ScopeGlobal, ScopeGet, ScopePost, ScopePut, ScopeDelete, ScopeOptions, ScopeTrace}
}
