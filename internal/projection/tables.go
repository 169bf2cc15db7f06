// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package projection

import (
	"github.com/MKhiriev/go-task-tracker/internal/paginate"
	"github.com/MKhiriev/go-task-tracker/models"
)

// UserFields is the public shape of a user. The password digest has no
// entry and therefore can never be rendered.
var UserFields = Fields[models.User]{
	{Name: "id", Value: func(u models.User) any { return u.ID }},
	{Name: "username", Value: func(u models.User) any { return u.Username }},
	{Name: "email", Value: func(u models.User) any { return u.Email }},
	{Name: "first_name", Value: func(u models.User) any { return Optional(u.FirstName) }},
	{Name: "last_name", Value: func(u models.User) any { return Optional(u.LastName) }},
}

// TaskFields is the public shape of a task.
var TaskFields = Fields[models.Task]{
	{Name: "id", Value: func(t models.Task) any { return t.ID }},
	{Name: "user_id", Value: func(t models.Task) any { return t.UserID }},
	{Name: "complete", Value: func(t models.Task) any { return t.Complete }},
	{Name: "summary", Value: func(t models.Task) any { return t.Summary }},
	{Name: "description", Value: func(t models.Task) any { return Optional(t.Description) }},
}

// LinkFields renders page navigation links; inapplicable links are omitted.
var LinkFields = Fields[paginate.Links]{
	{Name: "prev", Value: func(l paginate.Links) any { return Optional(l.Prev) }, OmitNil: true},
	{Name: "next", Value: func(l paginate.Links) any { return Optional(l.Next) }, OmitNil: true},
	{Name: "first", Value: func(l paginate.Links) any { return l.First }},
	{Name: "last", Value: func(l paginate.Links) any { return l.Last }},
}

// MetaFields renders the meta section of a page.
var MetaFields = Fields[paginate.Meta]{
	{Name: "page", Value: func(m paginate.Meta) any { return m.Page }},
	{Name: "per_page", Value: func(m paginate.Meta) any { return m.PerPage }},
	{Name: "total", Value: func(m paginate.Meta) any { return m.Total }},
	{Name: "pages", Value: func(m paginate.Meta) any { return m.Pages }},
	{Name: "links", Value: func(m paginate.Meta) any { return LinkFields.Project(m.Links) }},
}

// ProjectPage renders a page as {"items": [...], "meta": {...}} using items
// as the per-entity table.
func ProjectPage[T any](items Fields[T], page paginate.Page[T]) Object {
	return Object{
		{Key: "items", Value: items.ProjectList(page.Items)},
		{Key: "meta", Value: MetaFields.Project(page.Meta)},
	}
}
