// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/store"
	"github.com/MKhiriev/go-task-tracker/models"
)

// authService is the concrete implementation of AuthService.
// It looks users up through a UserRepository and checks passwords with a
// PasswordHasher.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// hasher verifies the supplied password against the stored digest.
	hasher PasswordHasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// Authenticate verifies a username and plaintext password pair.
//
// Returns the stored user or:
//   - ErrInvalidCredentials if either value is empty, no user has that exact
//     username, or the password does not match the digest.
//   - A wrapped storage error if the lookup itself fails.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Debug().Str("func", "*authService.Authenticate").Msg("empty credentials")
		return models.User{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("func", "*authService.Authenticate").Str("username", username).Msg("unknown username")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(user.PasswordHash, password) {
		log.Debug().Str("func", "*authService.Authenticate").Int64("id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}
