// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/kalluba/kalluba-funding/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalog creates two categories and projects whose creation order differs
// from the order the filters would select them in.
func catalog(t *testing.T) *MemStorage {
	t.Helper()
	s, clock := newTestMemStorage(t)
	ctx := context.Background()

	_, err := s.CreateCategory(ctx, models.Category{Slug: "tech"})
	require.NoError(t, err)
	_, err = s.CreateCategory(ctx, models.Category{Slug: "art"})
	require.NoError(t, err)

	projects := []struct {
		title    string
		category int64
		status   models.ProjectStatus
		pledged  string
	}{
		{"tech live old", 1, models.ProjectStatusLive, "9000"},
		{"art live", 2, models.ProjectStatusLive, "8999.50"},
		{"tech draft", 1, models.ProjectStatusDraft, "100000"},
		{"tech live mid", 1, models.ProjectStatusLive, "10"},
		{"art funded", 2, models.ProjectStatusFunded, "50000"},
		{"tech live new", 1, models.ProjectStatusLive, "900"},
	}
	for _, p := range projects {
		clock.Advance(time.Minute)
		created, err := s.CreateProject(ctx, models.Project{Title: p.title, CategoryID: p.category, Goal: dec("1000")})
		require.NoError(t, err)

		status, pledged := p.status, dec(p.pledged)
		_, err = s.UpdateProject(ctx, created.ID, models.ProjectUpdate{Status: &status, Pledged: &pledged})
		require.NoError(t, err)
	}

	return s
}

func titles(projects []models.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Title)
	}
	return out
}

func TestGetProjects_NoFilterNewestFirst(t *testing.T) {
	s := catalog(t)

	got, err := s.GetProjects(context.Background(), models.ProjectFilter{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"tech live new", "art funded", "tech live mid", "tech draft", "art live", "tech live old",
	}, titles(got))
}

func TestGetProjects_FiltersCombine(t *testing.T) {
	s := catalog(t)

	got, err := s.GetProjects(context.Background(), models.ProjectFilter{
		CategorySlug: "tech",
		Status:       statusPtr(models.ProjectStatusLive),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"tech live new", "tech live mid", "tech live old"}, titles(got))
	for _, p := range got {
		assert.Equal(t, int64(1), p.CategoryID)
		assert.Equal(t, models.ProjectStatusLive, p.Status)
	}
}

// TestGetProjects_LimitAppliesAfterFilterAndSort verifies that the limit
// selects the newest projects among the filtered set.
func TestGetProjects_LimitAppliesAfterFilterAndSort(t *testing.T) {
	s := catalog(t)

	got, err := s.GetProjects(context.Background(), models.ProjectFilter{
		CategorySlug: "tech",
		Status:       statusPtr(models.ProjectStatusLive),
		Limit:        2,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"tech live new", "tech live mid"}, titles(got))
}

func TestGetProjects_UnknownCategoryIsEmpty(t *testing.T) {
	s := catalog(t)

	got, err := s.GetProjects(context.Background(), models.ProjectFilter{CategorySlug: "gardening"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetProjects_SameCreatedAtOrdersByID(t *testing.T) {
	s, _ := newTestMemStorage(t)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := s.CreateProject(ctx, models.Project{Title: title})
		require.NoError(t, err)
	}

	got, err := s.GetProjects(ctx, models.ProjectFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"third", "second"}, titles(got))
}

func TestGetFeaturedProjects_NumericOrder(t *testing.T) {
	s := catalog(t)

	got, err := s.GetFeaturedProjects(context.Background(), 0)
	require.NoError(t, err)

	// "9000" ranks above "8999.50" and "900" ranks above "10"
	assert.Equal(t, []string{"tech live old", "art live", "tech live new", "tech live mid"}, titles(got))
	for i, p := range got {
		assert.Equal(t, models.ProjectStatusLive, p.Status)
		if i > 0 {
			assert.True(t, got[i-1].Pledged.GreaterThan(p.Pledged))
		}
	}
}

func TestGetFeaturedProjects_Limit(t *testing.T) {
	s := catalog(t)

	got, err := s.GetFeaturedProjects(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"tech live old", "art live"}, titles(got))
}

func TestSearchProjects_CaseInsensitive(t *testing.T) {
	s := newSeededMemStorage(t)
	ctx := context.Background()

	lower, err := s.SearchProjects(ctx, "solar", 10)
	require.NoError(t, err)
	upper, err := s.SearchProjects(ctx, "SOLAR", 10)
	require.NoError(t, err)

	require.NotEmpty(t, lower)
	assert.Contains(t, titles(lower), "Solar Power for Rural Communities")
	assert.Equal(t, lower, upper)
}

func TestSearchProjects_MatchesAnyFieldInTableOrder(t *testing.T) {
	s, _ := newTestMemStorage(t)
	ctx := context.Background()

	for _, p := range []models.Project{
		{Title: "Water pumps"},
		{Title: "Books", Subtitle: "water-proof covers"},
		{Title: "Bread", Description: "uses WATER"},
		{Title: "Unrelated"},
	} {
		_, err := s.CreateProject(ctx, p)
		require.NoError(t, err)
	}

	got, err := s.SearchProjects(ctx, "water", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Water pumps", "Books", "Bread"}, titles(got))

	limited, err := s.SearchProjects(ctx, "water", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Water pumps", "Books"}, titles(limited))

	none, err := s.SearchProjects(ctx, "nothing-matches", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}
