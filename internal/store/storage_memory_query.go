// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/kalluba/kalluba-funding/models"
)

const (
	DefaultFeaturedLimit = 6
	DefaultSearchLimit   = 10
)

// GetProjects keeps projects matching every filter, sorts them newest first
// and only then truncates to filter.Limit, so the result is always the
// newest projects among the filtered set.
func (s *MemStorage) GetProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categoryID := int64(0)
	if filter.CategorySlug != "" {
		category := s.findCategoryBySlug(filter.CategorySlug)
		if category == nil {
			return []models.Project{}, nil
		}
		categoryID = category.ID
	}

	projects := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if categoryID != 0 && p.CategoryID != categoryID {
			continue
		}
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		projects = append(projects, cloneProject(p))
	}

	slices.SortStableFunc(projects, newestFirst)

	return truncate(projects, filter.Limit), nil
}

// GetFeaturedProjects compares pledged amounts as decimals.
func (s *MemStorage) GetFeaturedProjects(ctx context.Context, limit int) ([]models.Project, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if p.Status == models.ProjectStatusLive {
			projects = append(projects, cloneProject(p))
		}
	}

	slices.SortStableFunc(projects, func(a, b models.Project) int {
		return b.Pledged.Cmp(a.Pledged)
	})

	return truncate(projects, limit), nil
}

func (s *MemStorage) SearchProjects(ctx context.Context, query string, limit int) ([]models.Project, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	needle := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]models.Project, 0, limit)
	for _, p := range s.projects {
		if len(projects) == limit {
			break
		}
		if matches(p, needle) {
			projects = append(projects, cloneProject(p))
		}
	}

	return projects, nil
}

func matches(p models.Project, needle string) bool {
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Subtitle), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

// newestFirst orders by creation time descending, then by id descending.
func newestFirst(a, b models.Project) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}

	return cmp.Compare(b.ID, a.ID)
}

func truncate(projects []models.Project, limit int) []models.Project {
	if limit > 0 && len(projects) > limit {
		return projects[:limit]
	}

	return projects
}
