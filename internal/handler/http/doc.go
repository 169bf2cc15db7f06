// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API under /api. Cross-cutting concerns such as Basic authentication,
// ownership checks, request tracing, access logging and response
// compression are handled in this package before requests are delegated to
// the service layer. Responses are rendered through the projection tables,
// so stored fields without a table entry never leave the server.
package http
