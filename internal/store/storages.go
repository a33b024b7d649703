// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/kalluba/kalluba-funding/internal/config"
	"github.com/kalluba/kalluba-funding/internal/logger"
)

// Storages bundles the repositories used by the service layer.
type Storages struct {
	UserRepository     UserRepository
	CategoryRepository CategoryRepository
	ProjectRepository  ProjectRepository
	RateLimiter        RateLimiter

	close func() error
}

// NewStorages selects the backend: PostgreSQL when a DSN is configured,
// otherwise the in-memory store. Rate limit counters always live in memory.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	limiter := NewMemRateLimiter(cfg.RateLimit.Window, nil)

	if cfg.Storage.DB.DSN == "" {
		log.Info().Msg("using in-memory storage")
		mem := NewMemStorage(log)
		return &Storages{
			UserRepository:     mem,
			CategoryRepository: mem,
			ProjectRepository:  mem,
			RateLimiter:        limiter,
			close:              func() error { return nil },
		}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}
	log.Info().Msg("using postgres storage")

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		CategoryRepository: NewCategoryRepository(db, log),
		ProjectRepository:  NewProjectRepository(db, log),
		RateLimiter:        limiter,
		close:              db.Close,
	}, nil
}

// Close releases the backend's resources.
func (s *Storages) Close() error {
	if s.close == nil {
		return nil
	}

	return s.close()
}
