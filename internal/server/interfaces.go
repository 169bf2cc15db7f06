// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract for the transport server managed by
// this package.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server, waiting for in-flight requests
	// until ctx is done.
	Shutdown(ctx context.Context)
}
