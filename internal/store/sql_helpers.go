// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"strings"
)

// returning renders a RETURNING clause; postgres and sqlite 3.35+ both
// support it on INSERT, UPDATE and DELETE.
func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
