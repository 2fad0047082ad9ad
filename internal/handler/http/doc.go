// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the echo upstream used to exercise the
// interceptor pipeline end to end.
//
// Routes:
//
//	/echo, /echo/*   any method; replies with a JSON description of the request
//	/status/{code}   any method; replies with the given status code
//
// Every request passes through trace-id and access-log middlewares. When a
// verification key is configured, echo routes also check the HashSHA256
// header written by the client's signing interceptor.
package http
