// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/kalluba/kalluba-funding/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores user accounts.
type UserRepository interface {
	// GetUser returns the user with the given id or [ErrUserNotFound].
	GetUser(ctx context.Context, id int64) (models.User, error)

	// GetUserByEmail returns the user whose email matches exactly
	// (case-sensitive) or [ErrUserNotFound].
	GetUserByEmail(ctx context.Context, email string) (models.User, error)

	// CreateUser stores a user without a usable password. Role defaults to
	// USER. A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// CreateUserWithPassword stores a user together with user.PasswordHash.
	CreateUserWithPassword(ctx context.Context, user models.User) (models.User, error)
}

// CategoryRepository stores project categories.
type CategoryRepository interface {
	// GetCategories returns all categories in insertion order.
	GetCategories(ctx context.Context) ([]models.Category, error)

	// GetCategoryBySlug returns the category with the given slug or
	// [ErrCategoryNotFound].
	GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error)

	// CreateCategory stores a category. A duplicate slug yields
	// [ErrSlugAlreadyExists].
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
}

// ProjectRepository stores projects with their rewards and pledges and
// answers catalog queries over them.
type ProjectRepository interface {
	// CreateProject stores a new project. Status defaults to DRAFT, pledged
	// and backer count start at zero.
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)

	// UpdateProject applies the non-nil fields of update and re-stamps
	// UpdatedAt. A missing project yields [ErrProjectNotFound].
	UpdateProject(ctx context.Context, id int64, update models.ProjectUpdate) (models.Project, error)

	// GetProjectByID returns the project joined with its creator, category,
	// rewards and pledges. The join is strict: a missing creator or category
	// yields [ErrProjectNotFound].
	GetProjectByID(ctx context.Context, id int64) (models.ProjectWithDetails, error)

	// GetProjects filters by category and status, sorts newest first and
	// then applies the limit.
	GetProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)

	// GetFeaturedProjects returns up to limit LIVE projects with the highest
	// pledged amount first.
	GetFeaturedProjects(ctx context.Context, limit int) ([]models.Project, error)

	// SearchProjects returns up to limit projects whose title, subtitle or
	// description contains query, ignoring case, in id order.
	SearchProjects(ctx context.Context, query string, limit int) ([]models.Project, error)

	// CreateReward attaches a reward tier to an existing project.
	CreateReward(ctx context.Context, reward models.Reward) (models.Reward, error)

	// CreatePledge records a pledge to an existing project. Payment status
	// defaults to PENDING.
	CreatePledge(ctx context.Context, pledge models.Pledge) (models.Pledge, error)
}

// RateLimiter is a fixed-window counter keyed by an arbitrary string.
type RateLimiter interface {
	// GetCount returns the number of hits in the current window, or 0 when
	// the window has expired.
	GetCount(key string) int

	// Increment records a hit and returns the new count. The first hit of a
	// window starts it; later hits never extend it.
	Increment(key string) int

	// Reset forgets the counter for key.
	Reset(key string)
}
