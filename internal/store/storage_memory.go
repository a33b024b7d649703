// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"
	"sync"
	"time"

	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/models"
)

// MemStorage is the in-memory implementation of [UserRepository],
// [CategoryRepository] and [ProjectRepository].
//
// Every table is a slice in insertion order and an entity's id is its
// position plus one, so ids are assigned monotonically and lookups by id are
// constant time. A single RWMutex guards all tables. Data lives for the
// lifetime of the process.
type MemStorage struct {
	mu sync.RWMutex

	users      []models.User
	categories []models.Category
	projects   []models.Project
	rewards    []models.Reward
	pledges    []models.Pledge

	now    func() time.Time
	logger *logger.Logger
}

// MemStorageOption customizes a [MemStorage].
type MemStorageOption func(*MemStorage)

// WithClock replaces the wall clock used to stamp created and updated times.
func WithClock(now func() time.Time) MemStorageOption {
	return func(s *MemStorage) {
		s.now = now
	}
}

// NewMemStorage returns an empty in-memory store.
func NewMemStorage(log *logger.Logger, opts ...MemStorageOption) *MemStorage {
	log.Debug().Msg("creating in-memory storage")

	s := &MemStorage{
		now:    time.Now,
		logger: log,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// at returns a pointer to the element with the given 1-based id, or nil.
func at[T any](table []T, id int64) *T {
	if id < 1 || id > int64(len(table)) {
		return nil
	}

	return &table[id-1]
}

func nextID[T any](table []T) int64 {
	return int64(len(table)) + 1
}

func cloneProject(p models.Project) models.Project {
	if p.EndDate != nil {
		endDate := *p.EndDate
		p.EndDate = &endDate
	}

	return p
}

func cloneReward(r models.Reward) models.Reward {
	if r.Quantity != nil {
		quantity := *r.Quantity
		r.Quantity = &quantity
	}
	r.ShippingRegions = slices.Clone(r.ShippingRegions)

	return r
}

func clonePledge(p models.Pledge) models.Pledge {
	if p.RewardID != nil {
		rewardID := *p.RewardID
		p.RewardID = &rewardID
	}

	return p
}
