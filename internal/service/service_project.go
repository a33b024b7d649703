// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/internal/store"
	"github.com/kalluba/kalluba-funding/models"
)

// SuggestionsLimit caps the number of search-as-you-type suggestions.
const SuggestionsLimit = 5

type projectService struct {
	projectRepository store.ProjectRepository

	now func() time.Time

	logger *logger.Logger
}

func NewProjectService(projectRepository store.ProjectRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		now:               time.Now,
		logger:            logger,
	}
}

func (s *projectService) List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	projects, err := s.projectRepository.GetProjects(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}

	return projects, nil
}

func (s *projectService) Featured(ctx context.Context, limit int) ([]models.Project, error) {
	projects, err := s.projectRepository.GetFeaturedProjects(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing featured projects: %w", err)
	}

	return projects, nil
}

func (s *projectService) Get(ctx context.Context, id int64) (models.ProjectWithDetails, error) {
	project, err := s.projectRepository.GetProjectByID(ctx, id)
	if err != nil {
		return models.ProjectWithDetails{}, fmt.Errorf("error getting project %d: %w", id, err)
	}

	project.FundingProgress = project.Project.FundingProgress()
	project.DaysLeft = project.Project.DaysLeft(s.now())

	return project, nil
}

func (s *projectService) Search(ctx context.Context, query string, limit int) ([]models.Project, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrSearchQueryRequired
	}

	projects, err := s.projectRepository.SearchProjects(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error searching projects: %w", err)
	}

	return projects, nil
}

func (s *projectService) Suggestions(ctx context.Context, query string) ([]models.ProjectSuggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.ProjectSuggestion{}, nil
	}

	projects, err := s.projectRepository.SearchProjects(ctx, query, SuggestionsLimit)
	if err != nil {
		return nil, fmt.Errorf("error searching project suggestions: %w", err)
	}

	suggestions := make([]models.ProjectSuggestion, 0, len(projects))
	for _, p := range projects {
		suggestions = append(suggestions, models.ProjectSuggestion{ID: p.ID, Title: p.Title, Subtitle: p.Subtitle})
	}

	return suggestions, nil
}
