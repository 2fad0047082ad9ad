// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the payload types exchanged between the transport and
// the interceptor pipeline: [Request] before dispatch and [Response] after
// the network call completes or fails.
package models
