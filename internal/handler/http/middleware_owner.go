// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-tracker/internal/service"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
)

// selfOnly lets a request through only when its {user} segment addresses
// the authenticated identity. It must run after [Handler.auth].
//
// The check compares the path with the identity and nothing else, so a 403
// is returned for another user's path whether or not that user exists.
func (h *Handler) selfOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ref, err := userRefFromPath(r)
		if err != nil {
			writeError(w, r, "*Handler.selfOnly", err)
			return
		}

		identity, _ := utils.IdentityFromContext(r.Context())
		if err := service.Authorize(identity, ref); err != nil {
			writeError(w, r, "*Handler.selfOnly", err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
