// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account entity used for authentication and authorization.
// It owns zero or more [Task] records.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	// It is immutable after creation.
	ID int64 `json:"id"`

	// Username is the unique login name. It is immutable after creation
	// and is used as the Basic-auth user name.
	Username string `json:"username"`

	// Email is the unique contact address of the user.
	Email string `json:"email"`

	// PasswordHash stores the one-way digest of the user's password.
	// It MUST never hold the plaintext password and is never projected.
	PasswordHash string `json:"-"`

	// FirstName is the optional given name of the user.
	FirstName *string `json:"first_name"`

	// LastName is the optional family name of the user.
	LastName *string `json:"last_name"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserCreate is the signup payload accepted by the users collection.
// Username, Email and Password are required.
type UserCreate struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// UserUpdate is a partial update of a user account.
// Only non-nil fields are applied. Username is deliberately absent:
// it cannot change after creation.
//
// Password carries the plaintext value when decoded from a request; the
// service layer replaces it with a digest before the update reaches storage.
type UserUpdate struct {
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.Password == nil && u.FirstName == nil && u.LastName == nil
}
