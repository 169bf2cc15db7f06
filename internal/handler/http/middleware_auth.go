// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
)

// basicRealm is sent in WWW-Authenticate with every 401 answer.
const basicRealm = `Basic realm="Authentication Required"`

// auth is an HTTP middleware that enforces Basic authentication.
//
// It reads the username and password from the "Authorization" header,
// resolves them via [service.AuthService.Authenticate] and, on success,
// binds the user to the request context with [utils.WithIdentity] before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the
// header is absent or malformed, the username is unknown or the password
// does not match. The answer is the same in all three cases. A storage
// failure during the lookup is reported as 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			writeError(w, r, "*Handler.auth", ErrMissingCredentials)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, username, password)
		if err != nil {
			writeError(w, r, "*Handler.auth", err)
			return
		}

		logger.FromRequest(r).Debug().Int64("user_id", user.ID).Msg("request authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, user)))
	})
}
