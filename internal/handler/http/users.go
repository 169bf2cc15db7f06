// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-tracker/internal/projection"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
	"github.com/MKhiriev/go-task-tracker/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	params, err := h.paginator.Params(r.URL.Query())
	if err != nil {
		writeError(w, r, "*Handler.listUsers", err)
		return
	}

	page, err := h.services.UserService.ListUsers(r.Context(), params, utils.RequestURL(r))
	if err != nil {
		writeError(w, r, "*Handler.listUsers", err)
		return
	}

	utils.WriteJSON(w, projection.ProjectPage(projection.UserFields, page), http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var create models.UserCreate
	if err := decodeJSON(r, &create); err != nil {
		writeError(w, r, "*Handler.createUser", err)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), create)
	if err != nil {
		writeError(w, r, "*Handler.createUser", err)
		return
	}

	utils.WriteJSON(w, projection.UserFields.Project(user), http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ref, err := userRefFromPath(r)
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), ref)
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	utils.WriteJSON(w, projection.UserFields.Project(user), http.StatusOK)
}

// updateUser applies a partial update to the caller's own account. A
// username in the body is ignored.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.IdentityFromContext(r.Context())

	var update models.UserUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, "*Handler.updateUser", err)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), identity.ID, update)
	if err != nil {
		writeError(w, r, "*Handler.updateUser", err)
		return
	}

	utils.WriteJSON(w, projection.UserFields.Project(user), http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.IdentityFromContext(r.Context())

	if err := h.services.UserService.DeleteUser(r.Context(), identity.ID); err != nil {
		writeError(w, r, "*Handler.deleteUser", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
