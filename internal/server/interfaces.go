// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the echo upstream.
//
// RunServer blocks until SIGINT, SIGTERM or SIGQUIT arrives or the listener
// fails; Shutdown stops it early.
type Server interface {
	RunServer()
	Shutdown()
}
