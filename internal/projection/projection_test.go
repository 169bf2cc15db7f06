// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package projection

import (
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-task-tracker/internal/paginate"
	"github.com/MKhiriev/go-task-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestObject_MarshalJSON_PreservesOrder(t *testing.T) {
	obj := Object{
		{Key: "z", Value: 1},
		{Key: "a", Value: "two"},
		{Key: "m", Value: nil},
	}

	b, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":"two","m":null}`, string(b))
}

func TestObject_MarshalJSON_Empty(t *testing.T) {
	b, err := json.Marshal(Object{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(b))
}

func TestObject_MarshalJSON_UnsupportedValue(t *testing.T) {
	_, err := json.Marshal(Object{{Key: "ch", Value: make(chan int)}})
	require.Error(t, err)
}

func TestUserFields_NeverExposePasswordHash(t *testing.T) {
	user := models.User{
		ID:           1,
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$digest",
		FirstName:    strPtr("Alice"),
	}

	b, err := json.Marshal(UserFields.Project(user))
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":1,"username":"alice","email":"a@x.com","first_name":"Alice","last_name":null}`, string(b))
	assert.NotContains(t, string(b), "digest")
	assert.NotContains(t, string(b), "password")
}

func TestTaskFields(t *testing.T) {
	task := models.Task{ID: 7, UserID: 1, Summary: "buy milk"}

	b, err := json.Marshal(TaskFields.Project(task))
	require.NoError(t, err)
	assert.Equal(t, `{"id":7,"user_id":1,"complete":false,"summary":"buy milk","description":null}`, string(b))
}

func TestLinkFields_OmitAbsentLinks(t *testing.T) {
	links := paginate.Links{First: "http://h/x?page=1", Last: "http://h/x?page=1"}

	obj := LinkFields.Project(links)

	_, hasPrev := obj.Get("prev")
	_, hasNext := obj.Get("next")
	assert.False(t, hasPrev)
	assert.False(t, hasNext)

	first, ok := obj.Get("first")
	require.True(t, ok)
	assert.Equal(t, "http://h/x?page=1", first)
}

func TestProjectPage(t *testing.T) {
	page := paginate.Page[models.Task]{
		Items: []models.Task{
			{ID: 1, UserID: 3, Summary: "a"},
			{ID: 2, UserID: 3, Summary: "b", Complete: true, Description: strPtr("d")},
		},
		Meta: paginate.Meta{
			Page:    2,
			PerPage: 2,
			Total:   5,
			Pages:   3,
			Links: paginate.Links{
				Prev:  strPtr("http://h/t?page=1"),
				Next:  strPtr("http://h/t?page=3"),
				First: "http://h/t?page=1",
				Last:  "http://h/t?page=3",
			},
		},
	}

	b, err := json.Marshal(ProjectPage(TaskFields, page))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"items": [
			{"id":1,"user_id":3,"complete":false,"summary":"a","description":null},
			{"id":2,"user_id":3,"complete":true,"summary":"b","description":"d"}
		],
		"meta": {
			"page":2,"per_page":2,"total":5,"pages":3,
			"links":{"prev":"http://h/t?page=1","next":"http://h/t?page=3","first":"http://h/t?page=1","last":"http://h/t?page=3"}
		}
	}`, string(b))
}

func TestProjectPage_EmptyItemsEncodeAsArray(t *testing.T) {
	page := paginate.Page[models.User]{
		Meta: paginate.Meta{Page: 1, PerPage: 20, Links: paginate.Links{First: "f", Last: "l"}},
	}

	b, err := json.Marshal(ProjectPage(UserFields, page))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"items":[]`)
}

func TestOptional(t *testing.T) {
	assert.Nil(t, Optional[string](nil))
	assert.Equal(t, "x", Optional(strPtr("x")))
}
