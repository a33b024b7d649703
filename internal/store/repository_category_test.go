// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCategoryRepo(t *testing.T) (*categoryRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &categoryRepository{db: db, logger: logger.Nop()}, mock
}

func categoryRows() *sqlmock.Rows {
	return sqlmock.NewRows(categoryColumns)
}

func TestCategoryRepository_GetCategories(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM categories ORDER BY id")).
		WillReturnRows(categoryRows().
			AddRow(1, "Technology", "technology", "Innovative tech solutions", "laptop-code", "blue", 142, now).
			AddRow(2, "Art & Design", "art-design", "Creative and artistic projects", "palette", "purple", 87, now))

	categories, err := repo.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "technology", categories[0].Slug)
	assert.Equal(t, 87, categories[1].ProjectCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_GetCategories_Empty(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery("FROM categories").WillReturnRows(categoryRows())

	categories, err := repo.GetCategories(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestCategoryRepository_GetCategories_QueryError(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery("FROM categories").WillReturnError(errors.New("connection reset"))

	_, err := repo.GetCategories(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCategoryRepository_GetCategoryBySlug(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM categories WHERE slug = $1")).
		WithArgs("music").
		WillReturnRows(categoryRows().AddRow(6, "Music", "music", "Musical and audio projects", "music", "pink", 51, now))

	category, err := repo.GetCategoryBySlug(context.Background(), "music")
	require.NoError(t, err)
	assert.Equal(t, int64(6), category.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_GetCategoryBySlug_NotFound(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery("FROM categories").WithArgs("knitting").WillReturnRows(categoryRows())

	_, err := repo.GetCategoryBySlug(context.Background(), "knitting")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryRepository_CreateCategory_DuplicateSlug(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery("INSERT INTO categories").
		WithArgs("Music", "music", "", "", "", 0).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateCategory(context.Background(), models.Category{Name: "Music", Slug: "music"})
	assert.ErrorIs(t, err, ErrSlugAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
