// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"

	"github.com/kalluba/kalluba-funding/models"
)

func (s *MemStorage) GetCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := slices.Clone(s.categories)
	if categories == nil {
		categories = []models.Category{}
	}

	return categories, nil
}

func (s *MemStorage) GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if category := s.findCategoryBySlug(slug); category != nil {
		return *category, nil
	}

	return models.Category{}, ErrCategoryNotFound
}

func (s *MemStorage) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findCategoryBySlug(category.Slug) != nil {
		return models.Category{}, ErrSlugAlreadyExists
	}

	category.ID = nextID(s.categories)
	category.CreatedAt = s.now()
	s.categories = append(s.categories, category)

	return category, nil
}

// findCategoryBySlug must be called with s.mu held.
func (s *MemStorage) findCategoryBySlug(slug string) *models.Category {
	for i := range s.categories {
		if s.categories[i].Slug == slug {
			return &s.categories[i]
		}
	}

	return nil
}
