// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user cannot be created because
	// another user already has the same email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrSlugAlreadyExists is returned when a category cannot be created
	// because another category already has the same slug.
	ErrSlugAlreadyExists = errors.New("category slug already exists")

	// ErrUserNotFound is returned when no user matches the requested id or
	// email.
	ErrUserNotFound = errors.New("user not found")

	// ErrCategoryNotFound is returned when no category matches the requested
	// slug.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrProjectNotFound is returned when a project does not exist, or when
	// its creator or category cannot be resolved.
	ErrProjectNotFound = errors.New("project not found")

	// ErrInvalidPledgeAmount is returned when a pledge amount is not positive.
	ErrInvalidPledgeAmount = errors.New("pledge amount must be positive")

	// ErrNegativeAmount is returned when a project goal or pledged amount is
	// negative.
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the PostgreSQL repositories when a SQL-level operation fails before any
// domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
