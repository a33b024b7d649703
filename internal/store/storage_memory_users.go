// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/models"
)

// placeholderPasswordHash is stored for users created without a password.
// It is not a valid bcrypt hash, so such users cannot log in.
const placeholderPasswordHash = ""

func (s *MemStorage) GetUser(ctx context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user := at(s.users, id)
	if user == nil {
		return models.User{}, fmt.Errorf("user %d: %w", id, ErrUserNotFound)
	}

	return *user, nil
}

func (s *MemStorage) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if user := s.findUserByEmail(email); user != nil {
		return *user, nil
	}

	return models.User{}, ErrUserNotFound
}

func (s *MemStorage) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.PasswordHash = placeholderPasswordHash
	return s.insertUser(ctx, user)
}

func (s *MemStorage) CreateUserWithPassword(ctx context.Context, user models.User) (models.User, error) {
	return s.insertUser(ctx, user)
}

func (s *MemStorage) insertUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findUserByEmail(user.Email) != nil {
		return models.User{}, ErrEmailAlreadyExists
	}

	if user.Role == "" {
		user.Role = models.RoleUser
	}

	now := s.now()
	user.ID = nextID(s.users)
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users = append(s.users, user)

	logger.FromContext(ctx).Debug().Int64("user_id", user.ID).Msg("user created")
	return user, nil
}

// findUserByEmail must be called with s.mu held.
func (s *MemStorage) findUserByEmail(email string) *models.User {
	for i := range s.users {
		if s.users[i].Email == email {
			return &s.users[i]
		}
	}

	return nil
}
