// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/paginate"
	"github.com/MKhiriev/go-task-tracker/internal/store"
	"github.com/MKhiriev/go-task-tracker/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         PasswordHasher
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// CreateUser stores a new account. The plaintext password is replaced by
// its digest before anything reaches storage.
func (s *userService) CreateUser(ctx context.Context, create models.UserCreate) (models.User, error) {
	log := logger.FromContext(ctx)

	digest, err := s.hasher.Hash(create.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	user, err := s.userRepository.CreateUser(ctx, models.User{
		Username:     create.Username,
		Email:        create.Email,
		PasswordHash: digest,
		FirstName:    create.FirstName,
		LastName:     create.LastName,
	})
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Str("username", create.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*userService.CreateUser").Int64("id", user.ID).Msg("user created")
	return user, nil
}

// GetUser resolves ref by ID or by exact username.
func (s *userService) GetUser(ctx context.Context, ref models.UserRef) (models.User, error) {
	if ref.IsUsername() {
		return s.userRepository.FindUserByUsername(ctx, ref.Username)
	}
	return s.userRepository.FindUserByID(ctx, ref.ID)
}

func (s *userService) ListUsers(ctx context.Context, params paginate.Params, pageURL *url.URL) (paginate.Page[models.User], error) {
	return paginate.Paginate(ctx, s.userRepository.ListUsers(), params, pageURL)
}

// UpdateUser applies a partial update. A new password is hashed first.
func (s *userService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Password != nil {
		digest, err := s.hasher.Hash(*update.Password)
		if err != nil {
			log.Err(err).Str("func", "*userService.UpdateUser").Msg("error hashing password")
			return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
		}
		update.Password = &digest
	}

	user, err := s.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Int64("id", id).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.DeleteUser").Int64("id", id).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}
