// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package builtin provides ready-made interceptors for the registry in
// package interceptor: header stamping, bearer tokens, idempotency keys,
// trace ids, payload signing, trace-context propagation, client-side rate
// limiting, logging and Prometheus metrics.
//
// Every constructor returns a plain interceptor.RequestInterceptor or
// interceptor.ResponseInterceptor, so they can be registered globally or on
// a single method scope:
//
//	reg.AddGlobalRequestInterceptor(builtin.TraceID(), builtin.UserAgent("cli/1.0"))
//	reg.AddPostRequestInterceptor(builtin.IdempotencyKey())
package builtin
