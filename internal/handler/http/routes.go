// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// must be set before any sub-router is mounted so they inherit it
	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/users", func(r chi.Router) {
			// routes without authorization
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)

			r.Route("/{user}", func(r chi.Router) {
				r.Get("/", h.getUser)

				// routes of the authenticated user's own resources
				r.Group(func(r chi.Router) {
					r.Use(h.auth, h.selfOnly)

					r.Post("/", h.updateUser)
					r.Delete("/", h.deleteUser)

					r.Get("/tasks", h.listTasks)
					r.Post("/tasks", h.createTask)

					r.Get("/tasks/{task_id}", h.getTask)
					r.Post("/tasks/{task_id}", h.updateTask)
					r.Delete("/tasks/{task_id}", h.deleteTask)
				})
			})
		})
	})

	return router
}
