// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-tracker/internal/projection"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
	"github.com/MKhiriev/go-task-tracker/models"
)

// Task routes run behind auth and selfOnly, so the owner addressed by the
// path is always the authenticated identity.

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	owner, _ := utils.IdentityFromContext(r.Context())

	complete, err := completeFilter(r)
	if err != nil {
		writeError(w, r, "*Handler.listTasks", err)
		return
	}

	params, err := h.paginator.Params(r.URL.Query())
	if err != nil {
		writeError(w, r, "*Handler.listTasks", err)
		return
	}

	filter := models.TaskFilter{UserID: owner.ID, Complete: complete}
	page, err := h.services.TaskService.ListTasks(r.Context(), filter, params, utils.RequestURL(r))
	if err != nil {
		writeError(w, r, "*Handler.listTasks", err)
		return
	}

	utils.WriteJSON(w, projection.ProjectPage(projection.TaskFields, page), http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	owner, _ := utils.IdentityFromContext(r.Context())

	var create models.TaskCreate
	if err := decodeJSON(r, &create); err != nil {
		writeError(w, r, "*Handler.createTask", err)
		return
	}

	task, err := h.services.TaskService.CreateTask(r.Context(), owner.ID, create)
	if err != nil {
		writeError(w, r, "*Handler.createTask", err)
		return
	}

	utils.WriteJSON(w, projection.TaskFields.Project(task), http.StatusCreated)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	owner, _ := utils.IdentityFromContext(r.Context())

	taskID, err := taskIDFromPath(r)
	if err != nil {
		writeError(w, r, "*Handler.getTask", err)
		return
	}

	task, err := h.services.TaskService.GetTask(r.Context(), owner.ID, taskID)
	if err != nil {
		writeError(w, r, "*Handler.getTask", err)
		return
	}

	utils.WriteJSON(w, projection.TaskFields.Project(task), http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	owner, _ := utils.IdentityFromContext(r.Context())

	taskID, err := taskIDFromPath(r)
	if err != nil {
		writeError(w, r, "*Handler.updateTask", err)
		return
	}

	var update models.TaskUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, "*Handler.updateTask", err)
		return
	}

	task, err := h.services.TaskService.UpdateTask(r.Context(), owner.ID, taskID, update)
	if err != nil {
		writeError(w, r, "*Handler.updateTask", err)
		return
	}

	utils.WriteJSON(w, projection.TaskFields.Project(task), http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	owner, _ := utils.IdentityFromContext(r.Context())

	taskID, err := taskIDFromPath(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteTask", err)
		return
	}

	if err := h.services.TaskService.DeleteTask(r.Context(), owner.ID, taskID); err != nil {
		writeError(w, r, "*Handler.deleteTask", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
