// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjectStatus(t *testing.T) {
	for _, s := range []string{"DRAFT", "LIVE", "ENDED", "FUNDED"} {
		status, err := ParseProjectStatus(s)
		require.NoError(t, err)
		assert.Equal(t, ProjectStatus(s), status)
	}

	for _, s := range []string{"", "live", "Live", "CANCELLED", " LIVE"} {
		_, err := ParseProjectStatus(s)
		assert.Error(t, err, s)
	}
}

func TestProject_FundingProgress(t *testing.T) {
	tests := []struct {
		name          string
		goal, pledged string
		want          float64
	}{
		{"partial", "60000", "45230", 75.38},
		{"nothing pledged", "1000", "0", 0},
		{"exactly funded", "1000", "1000", 100},
		{"overfunded is capped", "1000", "2500", 100},
		{"zero goal", "0", "500", 0},
		{"fractional amounts", "8999.5", "4499.75", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project{Goal: decimal.RequireFromString(tt.goal), Pledged: decimal.RequireFromString(tt.pledged)}
			assert.Equal(t, tt.want, p.FundingProgress())
		})
	}
}

func TestProject_DaysLeft(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		end := now.Add(d)
		return &end
	}

	tests := []struct {
		name    string
		endDate *time.Time
		want    int
	}{
		{"no end date", nil, 0},
		{"already ended", at(-time.Hour), 0},
		{"ends right now", at(0), 0},
		{"less than a day rounds up", at(time.Hour), 1},
		{"exactly two days", at(48 * time.Hour), 2},
		{"two days and a minute", at(48*time.Hour + time.Minute), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Project{EndDate: tt.endDate}.DaysLeft(now))
		})
	}
}

func TestProjectUpdate_Apply(t *testing.T) {
	end := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	p := Project{
		ID:      7,
		Title:   "Old title",
		Goal:    decimal.NewFromInt(1000),
		Pledged: decimal.Zero,
		Status:  ProjectStatusDraft,
	}

	title := "New title"
	pledged := decimal.RequireFromString("250.50")
	status := ProjectStatusLive
	ProjectUpdate{Title: &title, Pledged: &pledged, Status: &status, EndDate: &end}.Apply(&p)

	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, "New title", p.Title)
	assert.True(t, p.Goal.Equal(decimal.NewFromInt(1000)))
	assert.True(t, p.Pledged.Equal(pledged))
	assert.Equal(t, ProjectStatusLive, p.Status)
	require.NotNil(t, p.EndDate)
	assert.Equal(t, end, *p.EndDate)

	// the project keeps its own copy of the end date
	end = end.Add(time.Hour)
	assert.NotEqual(t, end, *p.EndDate)
}

func TestProject_JSONAmountsAreStrings(t *testing.T) {
	data, err := json.Marshal(Project{Goal: decimal.RequireFromString("60000.00"), Pledged: decimal.RequireFromString("8999.5")})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"goal":"60000"`)
	assert.Contains(t, string(data), `"pledged":"8999.5"`)
}

func TestUser_PasswordHashNotSerialized(t *testing.T) {
	data, err := json.Marshal(User{ID: 1, Email: "kwame@example.com", PasswordHash: "$2a$10$secret"})
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secret")
	assert.NotContains(t, string(data), "passwordHash")
}

func TestNewAppBuildInfo(t *testing.T) {
	assert.Equal(t, AppBuildInfo{Version: "v1.0.0", Date: "N/A", Commit: "abc123"}, NewAppBuildInfo("v1.0.0", "", "abc123"))
}
