// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/kalluba/kalluba-funding/internal/config"
	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/internal/mock"
	"github.com/kalluba/kalluba-funding/internal/store"
	"github.com/kalluba/kalluba-funding/internal/validators"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSignKey  = "test-sign-key"
	testClientID = "203.0.113.7"
)

var testNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			TokenSignKey:  testSignKey,
			TokenIssuer:   "kalluba",
			TokenDuration: 7 * 24 * time.Hour,
			Version:       "test",
		},
		RateLimit: config.RateLimit{
			Window:               15 * time.Minute,
			LoginAttempts:        5,
			RegistrationAttempts: 3,
			AuthRequests:         100,
		},
	}
}

type authMocks struct {
	users     *mock.MockUserRepository
	limiter   *mock.MockRateLimiter
	validator *mock.MockValidator
	hasher    *mock.MockPasswordHasher
}

// newMockedAuthService wires an authService to gomock collaborators.
func newMockedAuthService(t *testing.T) (*authService, authMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := authMocks{
		users:     mock.NewMockUserRepository(ctrl),
		limiter:   mock.NewMockRateLimiter(ctrl),
		validator: mock.NewMockValidator(ctrl),
		hasher:    mock.NewMockPasswordHasher(ctrl),
	}

	svc := NewAuthService(m.users, m.limiter, m.validator, m.hasher, testConfig(), logger.Nop()).(*authService)
	svc.now = func() time.Time { return testNow }

	return svc, m
}

// newMemAuthService wires an authService to the in-memory store, the real
// request validator and a cheap bcrypt hasher.
func newMemAuthService(t *testing.T) (*authService, *store.MemStorage, *store.MemRateLimiter) {
	t.Helper()

	mem := store.NewMemStorage(logger.Nop())
	limiter := store.NewMemRateLimiter(15*time.Minute, nil)

	svc := NewAuthService(mem, limiter, validators.NewRequestValidator(), NewBcryptHasher(bcrypt.MinCost), testConfig(), logger.Nop()).(*authService)

	return svc, mem, limiter
}
