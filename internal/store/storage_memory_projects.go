// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/models"
	"github.com/shopspring/decimal"
)

func (s *MemStorage) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if project.Goal.IsNegative() {
		return models.Project{}, fmt.Errorf("goal %s: %w", project.Goal, ErrNegativeAmount)
	}

	if project.Status == "" {
		project.Status = models.ProjectStatusDraft
	}
	project.Pledged = decimal.Zero
	project.BackerCount = 0

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	project.ID = nextID(s.projects)
	project.CreatedAt = now
	project.UpdatedAt = now
	project = cloneProject(project)
	s.projects = append(s.projects, project)

	logger.FromContext(ctx).Debug().Int64("project_id", project.ID).Msg("project created")
	return cloneProject(project), nil
}

func (s *MemStorage) UpdateProject(ctx context.Context, id int64, update models.ProjectUpdate) (models.Project, error) {
	if (update.Goal != nil && update.Goal.IsNegative()) || (update.Pledged != nil && update.Pledged.IsNegative()) {
		return models.Project{}, ErrNegativeAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	project := at(s.projects, id)
	if project == nil {
		return models.Project{}, fmt.Errorf("project %d: %w", id, ErrProjectNotFound)
	}

	update.Apply(project)
	project.UpdatedAt = s.now()

	return cloneProject(*project), nil
}

func (s *MemStorage) GetProjectByID(ctx context.Context, id int64) (models.ProjectWithDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project := at(s.projects, id)
	if project == nil {
		return models.ProjectWithDetails{}, fmt.Errorf("project %d: %w", id, ErrProjectNotFound)
	}

	creator := at(s.users, project.CreatorID)
	category := at(s.categories, project.CategoryID)
	if creator == nil || category == nil {
		logger.FromContext(ctx).Warn().
			Int64("project_id", id).
			Int64("creator_id", project.CreatorID).
			Int64("category_id", project.CategoryID).
			Msg("project references are unresolved")
		return models.ProjectWithDetails{}, fmt.Errorf("project %d: %w", id, ErrProjectNotFound)
	}

	details := models.ProjectWithDetails{
		Project:  cloneProject(*project),
		Creator:  *creator,
		Category: *category,
		Rewards:  []models.Reward{},
		Pledges:  []models.Pledge{},
	}
	for _, reward := range s.rewards {
		if reward.ProjectID == id {
			details.Rewards = append(details.Rewards, cloneReward(reward))
		}
	}
	for _, pledge := range s.pledges {
		if pledge.ProjectID == id {
			details.Pledges = append(details.Pledges, clonePledge(pledge))
		}
	}

	return details, nil
}

func (s *MemStorage) CreateReward(ctx context.Context, reward models.Reward) (models.Reward, error) {
	if reward.Amount.IsNegative() {
		return models.Reward{}, fmt.Errorf("reward amount %s: %w", reward.Amount, ErrNegativeAmount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if at(s.projects, reward.ProjectID) == nil {
		return models.Reward{}, fmt.Errorf("project %d: %w", reward.ProjectID, ErrProjectNotFound)
	}

	reward.ID = nextID(s.rewards)
	reward.CreatedAt = s.now()
	reward = cloneReward(reward)
	s.rewards = append(s.rewards, reward)

	return cloneReward(reward), nil
}

func (s *MemStorage) CreatePledge(ctx context.Context, pledge models.Pledge) (models.Pledge, error) {
	if !pledge.Amount.IsPositive() {
		return models.Pledge{}, ErrInvalidPledgeAmount
	}

	if pledge.PaymentStatus == "" {
		pledge.PaymentStatus = models.PaymentStatusPending
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if at(s.projects, pledge.ProjectID) == nil {
		return models.Pledge{}, fmt.Errorf("project %d: %w", pledge.ProjectID, ErrProjectNotFound)
	}
	if at(s.users, pledge.UserID) == nil {
		return models.Pledge{}, fmt.Errorf("user %d: %w", pledge.UserID, ErrUserNotFound)
	}

	pledge.ID = nextID(s.pledges)
	pledge.CreatedAt = s.now()
	pledge = clonePledge(pledge)
	s.pledges = append(s.pledges, pledge)

	return clonePledge(pledge), nil
}
