// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-task-tracker/models"

// Authorize grants access iff ref addresses identity itself: by ID when the
// reference is numeric, by exact username otherwise.
//
// The decision is made from the two values alone. Storage is never
// consulted, so a rejection does not reveal whether the target exists.
func Authorize(identity models.User, ref models.UserRef) error {
	if identity.ID == 0 {
		return ErrUnauthenticated
	}

	if ref.IsUsername() {
		if ref.Username == identity.Username {
			return nil
		}
		return ErrForbidden
	}

	if ref.ID == identity.ID {
		return nil
	}
	return ErrForbidden
}
