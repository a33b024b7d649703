// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus is the lifecycle state of a fundraising campaign.
type ProjectStatus string

const (
	ProjectStatusDraft  ProjectStatus = "DRAFT"
	ProjectStatusLive   ProjectStatus = "LIVE"
	ProjectStatusEnded  ProjectStatus = "ENDED"
	ProjectStatusFunded ProjectStatus = "FUNDED"
)

var projectStatuses = []ProjectStatus{
	ProjectStatusDraft,
	ProjectStatusLive,
	ProjectStatusEnded,
	ProjectStatusFunded,
}

// ParseProjectStatus converts s into a [ProjectStatus]. The match is exact:
// "live" is rejected, "LIVE" is accepted.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	for _, status := range projectStatuses {
		if string(status) == s {
			return status, nil
		}
	}

	return "", fmt.Errorf("unknown project status %q", s)
}

// Project is a fundraising campaign with a goal, a deadline and a status.
//
// Goal and Pledged are fixed-point decimals; they are encoded in JSON as
// decimal strings ("45230", "8999.5") and must never be compared as strings.
type Project struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Subtitle     string          `json:"subtitle"`
	Description  string          `json:"description"`
	Goal         decimal.Decimal `json:"goal"`
	Pledged      decimal.Decimal `json:"pledged"`
	DurationDays int             `json:"durationDays"`
	Status       ProjectStatus   `json:"status"`
	HeroImageURL string          `json:"heroImageUrl"`
	CreatorID    int64           `json:"creatorId"`
	CategoryID   int64           `json:"categoryId"`
	BackerCount  int             `json:"backerCount"`
	EndDate      *time.Time      `json:"endDate"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}

// FundingProgress returns pledged/goal as a percentage, capped at 100.
// A zero goal yields 0.
func (p Project) FundingProgress() float64 {
	if !p.Goal.IsPositive() {
		return 0
	}

	percent := p.Pledged.Div(p.Goal).Mul(decimal.NewFromInt(100))
	if percent.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}

	f, _ := percent.Round(2).Float64()
	return f
}

// DaysLeft returns the number of whole days (rounded up) until EndDate,
// or 0 when the campaign has no end date or has already ended.
func (p Project) DaysLeft(now time.Time) int {
	if p.EndDate == nil {
		return 0
	}

	remaining := p.EndDate.Sub(now)
	if remaining <= 0 {
		return 0
	}

	return int(math.Ceil(remaining.Hours() / 24))
}

// ProjectWithDetails is a project joined with its creator, its category,
// its reward tiers and its pledges.
type ProjectWithDetails struct {
	Project

	Creator  User     `json:"creator"`
	Category Category `json:"category"`
	Rewards  []Reward `json:"rewards"`
	Pledges  []Pledge `json:"pledges"`

	// FundingProgress is Project.FundingProgress at the time of the request.
	FundingProgress float64 `json:"fundingProgress"`
	// DaysLeft is Project.DaysLeft at the time of the request.
	DaysLeft int `json:"daysLeft"`
}

// ProjectFilter selects a subset of projects for listing.
//
// Filters are applied in a fixed order: category, status, newest-first
// sort, limit. Zero values disable the corresponding filter.
type ProjectFilter struct {
	// CategorySlug keeps only projects of the category with this slug.
	// An unknown slug selects no projects.
	CategorySlug string

	// Status keeps only projects in this state.
	Status *ProjectStatus

	// Limit caps the number of returned projects; 0 means no cap.
	Limit int
}

// ProjectUpdate represents a partial update of a single project.
// Only non-nil fields are applied.
type ProjectUpdate struct {
	Title        *string          `json:"title,omitempty"`
	Subtitle     *string          `json:"subtitle,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Goal         *decimal.Decimal `json:"goal,omitempty"`
	Pledged      *decimal.Decimal `json:"pledged,omitempty"`
	DurationDays *int             `json:"durationDays,omitempty"`
	Status       *ProjectStatus   `json:"status,omitempty"`
	HeroImageURL *string          `json:"heroImageUrl,omitempty"`
	CategoryID   *int64           `json:"categoryId,omitempty"`
	BackerCount  *int             `json:"backerCount,omitempty"`
	EndDate      *time.Time       `json:"endDate,omitempty"`
}

// Apply merges the non-nil fields of u into p.
func (u ProjectUpdate) Apply(p *Project) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Subtitle != nil {
		p.Subtitle = *u.Subtitle
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Goal != nil {
		p.Goal = *u.Goal
	}
	if u.Pledged != nil {
		p.Pledged = *u.Pledged
	}
	if u.DurationDays != nil {
		p.DurationDays = *u.DurationDays
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.HeroImageURL != nil {
		p.HeroImageURL = *u.HeroImageURL
	}
	if u.CategoryID != nil {
		p.CategoryID = *u.CategoryID
	}
	if u.BackerCount != nil {
		p.BackerCount = *u.BackerCount
	}
	if u.EndDate != nil {
		endDate := *u.EndDate
		p.EndDate = &endDate
	}
}

// ProjectSuggestion is the short form of a project used by search-as-you-type.
type ProjectSuggestion struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}
