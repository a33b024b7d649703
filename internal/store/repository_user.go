// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
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

func (r *userRepository) GetUser(ctx context.Context, id int64) (models.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getUser(ctx, sq.Eq{"email": email})
}

func (r *userRepository) getUser(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(userColumns...).From(models.User{}.TableName()).Where(where).ToSql()
	if err != nil {
		return models.User{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.getUser").Msg("error scanning user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// CreateUser persists a user without a usable password.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.PasswordHash = placeholderPasswordHash
	return r.insertUser(ctx, user)
}

func (r *userRepository) CreateUserWithPassword(ctx context.Context, user models.User) (models.User, error) {
	return r.insertUser(ctx, user)
}

// insertUser returns the canonical row via RETURNING.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) insertUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Role == "" {
		user.Role = models.RoleUser
	}

	query, args, err := psql.Insert(models.User{}.TableName()).
		Columns("name", "email", "password_hash", "bio", "profile_image_url", "role").
		Values(user.Name, user.Email, user.PasswordHash, user.Bio, user.ProfileImageURL, user.Role).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		return models.User{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.insertUser").Msg("error inserting user")
		return models.User{}, mapWriteError(err, ErrEmailAlreadyExists)
	}

	return created, nil
}
