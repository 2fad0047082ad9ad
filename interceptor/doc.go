// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package interceptor holds ordered request and response transforms for an
// HTTP client and folds exchanges through them.
//
// A [Registry] keeps one list per [Kind] and [Scope]. Reduction always runs
// the [ScopeGlobal] list first, then the list of the scope matching the
// request method (exact, case-sensitive match). Methods without a scope,
// such as PATCH, only see the global list.
//
// Registries can be built explicitly with [New] and passed to a transport,
// or shared process-wide through [Create] and [Instance]:
//
//	reg := interceptor.Create(
//	    interceptor.WithRequestInterceptors(builtin.TraceID()),
//	)
//	reg.AddPostRequestInterceptor(builtin.IdempotencyKey())
//
//	req, err := interceptor.ReduceRequestInterceptors(req)
//
// Create is idempotent: once the process-wide registry exists, later calls
// return it unchanged and drop their options.
package interceptor
