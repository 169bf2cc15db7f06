// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/paginate"
	"github.com/MKhiriev/go-task-tracker/models"
)

var userColumns = []string{"id", "username", "email", "password_hash", "first_name", "last_name"}

// userRepository is the SQL implementation of [UserRepository].
// It handles user accounts stored in the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned ID.
//
// Error handling:
//   - unique violation on username or email → [ErrUserAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(user.TableName()).
		Columns("username", "email", "password_hash", "first_name", "last_name").
		Values(user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username or email taken")
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByID returns the user with the given ID.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"id": id})
}

// FindUserByUsername returns the user with the given username. The match
// is exact and case sensitive.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"username": username})
}

func (r *userRepository) findUser(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.withReadRetry(ctx, func(ctx context.Context) error {
		user, err = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdateUser applies the non-nil fields of update to the user and returns
// the updated row. An empty update behaves like a lookup.
func (r *userRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return r.FindUserByID(ctx, id)
	}

	builder := r.db.builder.Update(models.User{}.TableName()).Where(sq.Eq{"id": id})
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Password != nil {
		builder = builder.Set("password_hash", *update.Password)
	}
	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
	}

	query, args, err := builder.Suffix(returning(userColumns)).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil && r.db.errorClassificator.IsUniqueViolation(err):
		return models.User{}, ErrUserAlreadyExists
	case err != nil:
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// DeleteUser removes the user. Its tasks go with it through the
// ON DELETE CASCADE foreign key.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Delete(models.User{}.TableName()).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ListUsers returns all users ordered by ID.
func (r *userRepository) ListUsers() paginate.Query[models.User] {
	return NewQuery(r.db, models.User{}.TableName(), userColumns, scanUser).OrderBy("id")
}

func scanUser(row RowScanner) (models.User, error) {
	var user models.User
	var firstName, lastName sql.NullString

	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &firstName, &lastName); err != nil {
		return models.User{}, err
	}

	user.FirstName = nullableString(firstName)
	user.LastName = nullableString(lastName)

	return user, nil
}
