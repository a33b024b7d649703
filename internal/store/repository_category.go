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

// categoryRepository is the PostgreSQL-backed [CategoryRepository].
type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *categoryRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	query, args, err := psql.Select(categoryColumns...).From(models.Category{}.TableName()).OrderBy("id").ToSql()
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryRepository.GetCategories").Msg("error querying categories")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, errors.Join(ErrScanningRows, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return categories, nil
}

func (r *categoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error) {
	query, args, err := psql.Select(categoryColumns...).
		From(models.Category{}.TableName()).
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return models.Category{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return category, nil
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	query, args, err := psql.Insert(models.Category{}.TableName()).
		Columns("name", "slug", "description", "icon_name", "color", "project_count").
		Values(category.Name, category.Slug, category.Description, category.IconName, category.Color, category.ProjectCount).
		Suffix("RETURNING " + joinColumns(categoryColumns)).
		ToSql()
	if err != nil {
		return models.Category{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	created, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("error inserting category")
		return models.Category{}, mapWriteError(err, ErrSlugAlreadyExists)
	}

	return created, nil
}
