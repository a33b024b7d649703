// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/internal/mock"
	"github.com/kalluba/kalluba-funding/internal/store"
	"github.com/kalluba/kalluba-funding/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMockedProjectService(t *testing.T) (*projectService, *mock.MockProjectRepository) {
	t.Helper()
	repo := mock.NewMockProjectRepository(gomock.NewController(t))

	svc := NewProjectService(repo, logger.Nop()).(*projectService)
	svc.now = func() time.Time { return testNow }

	return svc, repo
}

func TestProjectService_List_PassesFilter(t *testing.T) {
	svc, repo := newMockedProjectService(t)
	ctx := context.Background()
	live := models.ProjectStatusLive
	filter := models.ProjectFilter{CategorySlug: "technology", Status: &live, Limit: 3}
	want := []models.Project{{ID: 2, Title: "Smart Garden System"}}

	repo.EXPECT().GetProjects(ctx, filter).Return(want, nil)

	got, err := svc.List(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProjectService_Featured_StoreError(t *testing.T) {
	svc, repo := newMockedProjectService(t)
	ctx := context.Background()
	dbErr := errors.New("boom")

	repo.EXPECT().GetFeaturedProjects(ctx, 6).Return(nil, dbErr)

	_, err := svc.Featured(ctx, 6)

	assert.ErrorIs(t, err, dbErr)
}

func TestProjectService_Get_ComputesProgressAndDaysLeft(t *testing.T) {
	svc, repo := newMockedProjectService(t)
	ctx := context.Background()
	endDate := testNow.Add(36 * time.Hour)
	details := models.ProjectWithDetails{
		Project: models.Project{
			ID:      1,
			Goal:    decimal.RequireFromString("50000.00"),
			Pledged: decimal.RequireFromString("12500.00"),
			EndDate: &endDate,
		},
	}

	repo.EXPECT().GetProjectByID(ctx, int64(1)).Return(details, nil)

	got, err := svc.Get(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, 25.0, got.FundingProgress)
	assert.Equal(t, 2, got.DaysLeft)
}

func TestProjectService_Get_OverfundedCapsAt100(t *testing.T) {
	svc, repo := newMockedProjectService(t)
	ctx := context.Background()
	details := models.ProjectWithDetails{
		Project: models.Project{
			ID:      4,
			Goal:    decimal.RequireFromString("30000.00"),
			Pledged: decimal.RequireFromString("45000.00"),
		},
	}

	repo.EXPECT().GetProjectByID(ctx, int64(4)).Return(details, nil)

	got, err := svc.Get(ctx, 4)

	require.NoError(t, err)
	assert.Equal(t, 100.0, got.FundingProgress)
	assert.Zero(t, got.DaysLeft)
}

func TestProjectService_Get_NotFound(t *testing.T) {
	svc, repo := newMockedProjectService(t)
	ctx := context.Background()

	repo.EXPECT().GetProjectByID(ctx, int64(42)).Return(models.ProjectWithDetails{}, store.ErrProjectNotFound)

	_, err := svc.Get(ctx, 42)

	assert.ErrorIs(t, err, store.ErrProjectNotFound)
}

func TestProjectService_Search_BlankQuery(t *testing.T) {
	svc, _ := newMockedProjectService(t)

	for _, q := range []string{"", "   "} {
		_, err := svc.Search(context.Background(), q, 10)
		assert.ErrorIs(t, err, ErrSearchQueryRequired)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestProjectService_Search_TrimsQuery(t *testing.T) {
	svc, repo := newMockedProjectService(t)
	ctx := context.Background()

	repo.EXPECT().SearchProjects(ctx, "solar", 10).Return([]models.Project{{ID: 1}}, nil)

	got, err := svc.Search(ctx, "  solar ", 10)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestProjectService_Suggestions_BlankQuery(t *testing.T) {
	svc, _ := newMockedProjectService(t)

	got, err := svc.Suggestions(context.Background(), "")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestProjectService_Suggestions_ShortForm(t *testing.T) {
	svc, repo := newMockedProjectService(t)
	ctx := context.Background()

	repo.EXPECT().SearchProjects(ctx, "s", SuggestionsLimit).Return([]models.Project{
		{ID: 1, Title: "Solar Power for Rural Communities", Subtitle: "Clean energy", Description: "long text"},
		{ID: 2, Title: "Smart Garden System", Subtitle: "Grow food indoors"},
	}, nil)

	got, err := svc.Suggestions(ctx, "s")

	require.NoError(t, err)
	assert.Equal(t, []models.ProjectSuggestion{
		{ID: 1, Title: "Solar Power for Rural Communities", Subtitle: "Clean energy"},
		{ID: 2, Title: "Smart Garden System", Subtitle: "Grow food indoors"},
	}, got)
}

func TestProjectService_SearchSeedData(t *testing.T) {
	mem := store.NewMemStorage(logger.Nop())
	require.NoError(t, store.Seed(context.Background(), mem, mem, mem, NewBcryptHasher(4), time.Now()))
	svc := NewProjectService(mem, logger.Nop())

	lower, err := svc.Search(context.Background(), "solar", 10)
	require.NoError(t, err)
	upper, err := svc.Search(context.Background(), "SOLAR", 10)
	require.NoError(t, err)

	require.NotEmpty(t, lower)
	assert.Equal(t, "Solar Power for Rural Communities", lower[0].Title)
	assert.Equal(t, lower, upper)

	suggestions, err := svc.Suggestions(context.Background(), "a")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(suggestions), SuggestionsLimit)
}
