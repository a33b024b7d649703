// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the API server.
//
// [Server.RunServer] blocks until ctx is cancelled, a termination signal
// arrives or the listener fails. [Server.Shutdown] stops accepting new
// connections and waits for in-flight requests until ctx expires.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown(ctx context.Context) error
}
