// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/internal/store"
	"github.com/kalluba/kalluba-funding/models"
)

type categoryService struct {
	categoryRepository store.CategoryRepository

	logger *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}

	return categories, nil
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (models.Category, error) {
	category, err := s.categoryRepository.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return models.Category{}, fmt.Errorf("error getting category %q: %w", slug, err)
	}

	return category, nil
}
