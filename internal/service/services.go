// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/kalluba/kalluba-funding/internal/config"
	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/internal/store"
	"github.com/kalluba/kalluba-funding/internal/validators"
)

type Services struct {
	AuthService     AuthService
	CategoryService CategoryService
	ProjectService  ProjectService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, hasher PasswordHasher, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: NewAuthService(
			storages.UserRepository,
			storages.RateLimiter,
			validators.NewRequestValidator(),
			hasher,
			cfg,
			logger,
		),
		CategoryService: NewCategoryService(storages.CategoryRepository, logger),
		ProjectService:  NewProjectService(storages.ProjectRepository, logger),
		AppInfoService:  appInfoService,
	}, nil
}
