// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"net/mail"
	"regexp"
	"strconv"
	"strings"
)

const (
	maxUsernameLength = 64
	maxEmailLength    = 255
	maxNameLength     = 255
	maxPasswordLength = 72
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// rule checks one field. It returns nil or one of the package sentinels.
type rule func() error

// check runs the rules named by fields, or all of them when fields is empty.
// The first failure is returned as a *ValidationError.
func check(rules map[string]rule, order []string, fields ...string) error {
	if len(fields) == 0 {
		fields = order
	}

	for _, field := range fields {
		r, ok := rules[field]
		if !ok {
			return NewValidationError(field, ErrUnknownField)
		}
		if err := r(); err != nil {
			return NewValidationError(field, err)
		}
	}

	return nil
}

func requiredText(value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return ErrRequiredField
	}
	if len(value) > maxLen {
		return ErrFieldTooLong
	}
	return nil
}

func optionalText(value *string, maxLen int) error {
	if value == nil {
		return nil
	}
	if strings.TrimSpace(*value) == "" {
		return ErrEmptyField
	}
	if len(*value) > maxLen {
		return ErrFieldTooLong
	}
	return nil
}

// usernameRule keeps usernames usable as a path segment that cannot be
// mistaken for a numeric user id.
func usernameRule(username string) error {
	if err := requiredText(username, maxUsernameLength); err != nil {
		return err
	}
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}
	if _, err := strconv.ParseInt(username, 10, 64); err == nil {
		return ErrInvalidUsername
	}
	return nil
}

func emailRule(email string) error {
	if err := requiredText(email, maxEmailLength); err != nil {
		return err
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

func passwordRule(password string) error {
	if password == "" {
		return ErrRequiredField
	}
	if len(password) > maxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

func optional[T any](value *T, r func(T) error) error {
	if value == nil {
		return nil
	}
	return r(*value)
}
