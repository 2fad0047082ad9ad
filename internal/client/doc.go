// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line HTTP client: it installs the
// configured interceptors on a registry, sends one request through an
// adapter.Transport and renders the outcome.
package client
