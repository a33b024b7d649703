// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func newTestMemStorage(t *testing.T) (*MemStorage, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	return NewMemStorage(logger.Nop(), WithClock(clock.Now)), clock
}

func newSeededMemStorage(t *testing.T) *MemStorage {
	t.Helper()
	s := NewMemStorage(logger.Nop())
	require.NoError(t, Seed(context.Background(), s, s, s, plainHasher{}, time.Now()))
	return s
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func statusPtr(s models.ProjectStatus) *models.ProjectStatus {
	return &s
}
