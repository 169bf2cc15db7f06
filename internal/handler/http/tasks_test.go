// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-task-tracker/internal/paginate"
	"github.com/MKhiriev/go-task-tracker/internal/store"
	"github.com/MKhiriev/go-task-tracker/internal/validators"
	"github.com/MKhiriev/go-task-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListTasks_CompleteFilter(t *testing.T) {
	tests := []struct {
		query string
		want  *bool
	}{
		{query: "", want: nil},
		{query: "?complete=1", want: boolPtr(true)},
		{query: "?complete=true", want: boolPtr(true)},
		{query: "?complete=0", want: boolPtr(false)},
		{query: "?complete=false", want: boolPtr(false)},
	}

	for _, tt := range tests {
		t.Run("filter "+tt.query, func(t *testing.T) {
			th := newTestHandler(t)

			filter := models.TaskFilter{UserID: alice.ID, Complete: tt.want}
			th.tasks.EXPECT().ListTasks(gomock.Any(), filter, paginate.Params{Page: 1, PerPage: 20}, gomock.Any()).
				Return(paginate.Page[models.Task]{Items: []models.Task{}}, nil)

			rec := th.do(t, http.MethodGet, "/api/users/alice/tasks"+tt.query, "", th.authenticatedAs(alice))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestListTasks_InvalidCompleteFilter(t *testing.T) {
	th := newTestHandler(t)

	rec := th.do(t, http.MethodGet, "/api/users/1/tasks?complete=maybe", "", th.authenticatedAs(alice))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, completeParam, decodeBody(t, rec)["field"])
}

func TestListTasks_OtherUser_Forbidden(t *testing.T) {
	th := newTestHandler(t)

	rec := th.do(t, http.MethodGet, "/api/users/bob/tasks", "", th.authenticatedAs(alice))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListTasks_RendersPage(t *testing.T) {
	th := newTestHandler(t)

	task := models.Task{ID: 4, UserID: 1, Summary: "buy milk", Description: strPtr("2l")}
	th.tasks.EXPECT().ListTasks(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(paginate.Page[models.Task]{
			Items: []models.Task{task},
			Meta:  paginate.Meta{Page: 1, PerPage: 20, Total: 1, Pages: 1, Links: paginate.Links{First: "f", Last: "l"}},
		}, nil)

	rec := th.do(t, http.MethodGet, "/api/users/1/tasks", "", th.authenticatedAs(alice))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"items":[{"id":4,"user_id":1,"complete":false,"summary":"buy milk","description":"2l"}],
		"meta":{"page":1,"per_page":20,"total":1,"pages":1,"links":{"first":"f","last":"l"}}
	}`, rec.Body.String())
}

func TestCreateTask(t *testing.T) {
	th := newTestHandler(t)

	want := models.TaskCreate{Summary: strPtr("buy milk")}
	th.tasks.EXPECT().CreateTask(gomock.Any(), alice.ID, want).Return(models.Task{ID: 1, UserID: 1, Summary: "buy milk"}, nil)

	rec := th.do(t, http.MethodPost, "/api/users/alice/tasks", `{"summary":"buy milk"}`, th.authenticatedAs(alice))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"user_id":1,"complete":false,"summary":"buy milk","description":null}`, rec.Body.String())
}

func TestCreateTask_CompleteMustBeBoolean(t *testing.T) {
	th := newTestHandler(t)

	rec := th.do(t, http.MethodPost, "/api/users/1/tasks", `{"summary":"s","complete":"yes"}`, th.authenticatedAs(alice))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, validators.FieldComplete, body["field"])
	assert.Equal(t, validators.ErrInvalidType.Error(), body["message"])
}

func TestGetTask(t *testing.T) {
	th := newTestHandler(t)

	th.tasks.EXPECT().GetTask(gomock.Any(), alice.ID, int64(7)).Return(models.Task{ID: 7, UserID: 1, Summary: "s"}, nil)

	rec := th.do(t, http.MethodGet, "/api/users/1/tasks/7", "", th.authenticatedAs(alice))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(7), decodeBody(t, rec)["id"])
}

func TestGetTask_OfAnotherUser_NotFound(t *testing.T) {
	th := newTestHandler(t)

	th.tasks.EXPECT().GetTask(gomock.Any(), alice.ID, int64(8)).Return(models.Task{}, store.ErrTaskNotFound)

	rec := th.do(t, http.MethodGet, "/api/users/1/tasks/8", "", th.authenticatedAs(alice))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTask_InvalidID_NotFound(t *testing.T) {
	th := newTestHandler(t)

	for _, id := range []string{"abc", "0", "-1"} {
		rec := th.do(t, http.MethodGet, "/api/users/1/tasks/"+id, "", th.authenticatedAs(alice))
		assert.Equal(t, http.StatusNotFound, rec.Code, id)
	}
}

func TestUpdateTask(t *testing.T) {
	th := newTestHandler(t)

	want := models.TaskUpdate{Complete: boolPtr(true)}
	th.tasks.EXPECT().UpdateTask(gomock.Any(), alice.ID, int64(3), want).Return(models.Task{ID: 3, UserID: 1, Summary: "s", Complete: true}, nil)

	rec := th.do(t, http.MethodPost, "/api/users/alice/tasks/3", `{"complete":true}`, th.authenticatedAs(alice))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["complete"])
}

func TestUpdateTask_EmptySummary(t *testing.T) {
	th := newTestHandler(t)

	th.tasks.EXPECT().UpdateTask(gomock.Any(), alice.ID, int64(3), gomock.Any()).
		Return(models.Task{}, validators.NewValidationError(validators.FieldSummary, validators.ErrEmptyField))

	rec := th.do(t, http.MethodPost, "/api/users/1/tasks/3", `{"summary":""}`, th.authenticatedAs(alice))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, validators.FieldSummary, decodeBody(t, rec)["field"])
}

func TestDeleteTask(t *testing.T) {
	th := newTestHandler(t)

	th.tasks.EXPECT().DeleteTask(gomock.Any(), alice.ID, int64(3)).Return(nil)

	rec := th.do(t, http.MethodDelete, "/api/users/1/tasks/3", "", th.authenticatedAs(alice))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestDeleteTask_OtherUser_Forbidden(t *testing.T) {
	th := newTestHandler(t)

	rec := th.do(t, http.MethodDelete, "/api/users/2/tasks/3", "", th.authenticatedAs(alice))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
