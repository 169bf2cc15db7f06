// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"
)

// UserRef identifies a user from a URL path segment.
// Exactly one of ID and Username is set: a segment that parses as a
// positive integer is an ID, anything else is a username.
type UserRef struct {
	ID       int64
	Username string
}

// ParseUserRef turns a raw path segment into a [UserRef].
// It returns ok == false for an empty (or blank) segment.
func ParseUserRef(segment string) (UserRef, bool) {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return UserRef{}, false
	}

	if id, err := strconv.ParseInt(segment, 10, 64); err == nil && id > 0 {
		return UserRef{ID: id}, true
	}

	return UserRef{Username: segment}, true
}

// IsUsername reports whether the reference is by username.
func (r UserRef) IsUsername() bool {
	return r.Username != ""
}

// String returns the reference in its path-segment form.
func (r UserRef) String() string {
	if r.IsUsername() {
		return r.Username
	}
	return strconv.FormatInt(r.ID, 10)
}
