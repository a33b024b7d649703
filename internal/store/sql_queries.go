// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/kalluba/kalluba-funding/models"
)

// psql builds statements with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"id", "name", "email", "password_hash", "bio", "profile_image_url", "role", "created_at", "updated_at",
}

var categoryColumns = []string{
	"id", "name", "slug", "description", "icon_name", "color", "project_count", "created_at",
}

var projectColumns = []string{
	"id", "title", "subtitle", "description", "goal", "pledged", "duration_days", "status",
	"hero_image_url", "creator_id", "category_id", "backer_count", "end_date", "created_at", "updated_at",
}

var rewardColumns = []string{
	"id", "project_id", "title", "amount", "description", "quantity", "shipping_regions", "created_at",
}

var pledgeColumns = []string{
	"id", "project_id", "user_id", "reward_id", "amount", "payment_status", "created_at",
}

// qualify prefixes every column with the table alias.
func qualify(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}

	return out
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern returns an ILIKE pattern matching s anywhere, with LIKE
// wildcards in s taken literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Bio, &u.ProfileImageURL, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func scanCategory(row rowScanner) (models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IconName, &c.Color, &c.ProjectCount, &c.CreatedAt)
	return c, err
}

func projectDest(p *models.Project, endDate *sql.NullTime) []any {
	return []any{
		&p.ID, &p.Title, &p.Subtitle, &p.Description, &p.Goal, &p.Pledged, &p.DurationDays, &p.Status,
		&p.HeroImageURL, &p.CreatorID, &p.CategoryID, &p.BackerCount, endDate, &p.CreatedAt, &p.UpdatedAt,
	}
}

func finishProject(p *models.Project, endDate sql.NullTime) {
	if endDate.Valid {
		t := endDate.Time
		p.EndDate = &t
	}
}

func scanProject(row rowScanner) (models.Project, error) {
	var p models.Project
	var endDate sql.NullTime
	if err := row.Scan(projectDest(&p, &endDate)...); err != nil {
		return models.Project{}, err
	}
	finishProject(&p, endDate)

	return p, nil
}

func scanProjects(rows *sql.Rows) ([]models.Project, error) {
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, errors.Join(ErrScanningRows, err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return projects, nil
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
