// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/kalluba/kalluba-funding/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues and verifies session tokens.
//
// clientID identifies the caller for rate limiting, usually the remote IP.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest, clientID string) (models.AuthResult, error)
	Login(ctx context.Context, req models.LoginRequest, clientID string) (models.AuthResult, error)

	// ParseToken verifies tokenString and returns its claims, or one of
	// ErrInvalidToken, ErrTokenExpired, ErrInvalidIssuer.
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)

	// CurrentUser loads the account the claims were issued for.
	CurrentUser(ctx context.Context, claims models.Claims) (models.User, error)
}

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	GetBySlug(ctx context.Context, slug string) (models.Category, error)
}

type ProjectService interface {
	List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	Featured(ctx context.Context, limit int) ([]models.Project, error)

	// Get returns the project page with funding progress and days left
	// computed at call time.
	Get(ctx context.Context, id int64) (models.ProjectWithDetails, error)

	// Search fails with ErrSearchQueryRequired on a blank query.
	Search(ctx context.Context, query string, limit int) ([]models.Project, error)

	// Suggestions returns an empty list on a blank query.
	Suggestions(ctx context.Context, query string) ([]models.ProjectSuggestion, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// PasswordHasher hashes account passwords with a slow one-way function.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns ErrInvalidCredentials when password does not match hash.
	Compare(hash, password string) error
}
