// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// routeNotFound is registered both as the router's NotFound and its
// MethodNotAllowed handler.
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. Answering 404 instead hides the existence of the route
// from callers that use an unsupported method.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, "routeNotFound", ErrRouteNotFound)
}
