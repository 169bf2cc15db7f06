// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when the configuration
	// leaves no transport to serve.
	errNoServersAreCreated = errors.New("no servers are created")

	// errServerStopped is returned by run when Serve exits before any
	// shutdown was requested.
	errServerStopped = errors.New("HTTP server stopped unexpectedly")
)
