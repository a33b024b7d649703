// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Category groups projects for discovery (e.g. "technology", "music").
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	IconName    string `json:"iconName"`
	Color       string `json:"color"`

	// ProjectCount is a display counter stored with the category. It is
	// not recomputed from the live project table.
	ProjectCount int `json:"projectCount"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}
