// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access-log entry per request through the
// request-scoped logger, so the entry carries the trace id. Server errors
// are logged at error level and client errors at warn.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		status := lw.Status()
		logger.FromRequest(r).WithLevel(accessLogLevel(status)).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("remote_addr", r.RemoteAddr).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
