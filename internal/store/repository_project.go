// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/models"
)

// projectRepository is the PostgreSQL-backed [ProjectRepository]. Catalog
// queries are pushed down to SQL with the same semantics as [MemStorage].
type projectRepository struct {
	logger *logger.Logger
	db     *DB
	types  *pgtype.Map
}

func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		db:     db,
		logger: logger,
		types:  pgtype.NewMap(),
	}
}

func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if project.Goal.IsNegative() {
		return models.Project{}, fmt.Errorf("goal %s: %w", project.Goal, ErrNegativeAmount)
	}
	if project.Status == "" {
		project.Status = models.ProjectStatusDraft
	}

	query, args, err := psql.Insert(models.Project{}.TableName()).
		Columns("title", "subtitle", "description", "goal", "pledged", "duration_days", "status",
			"hero_image_url", "creator_id", "category_id", "backer_count", "end_date").
		Values(project.Title, project.Subtitle, project.Description, project.Goal, "0", project.DurationDays, project.Status,
			project.HeroImageURL, project.CreatorID, project.CategoryID, 0, project.EndDate).
		Suffix("RETURNING " + joinColumns(projectColumns)).
		ToSql()
	if err != nil {
		return models.Project{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	created, err := scanProject(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectRepository.CreateProject").Msg("error inserting project")
		return models.Project{}, mapWriteError(err, nil)
	}

	return created, nil
}

func (r *projectRepository) UpdateProject(ctx context.Context, id int64, update models.ProjectUpdate) (models.Project, error) {
	if (update.Goal != nil && update.Goal.IsNegative()) || (update.Pledged != nil && update.Pledged.IsNegative()) {
		return models.Project{}, ErrNegativeAmount
	}

	query, args, err := psql.Update(models.Project{}.TableName()).
		SetMap(updateClauses(update)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(projectColumns)).
		ToSql()
	if err != nil {
		return models.Project{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	updated, err := scanProject(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, fmt.Errorf("project %d: %w", id, ErrProjectNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectRepository.UpdateProject").Msg("error updating project")
		return models.Project{}, mapWriteError(err, nil)
	}

	return updated, nil
}

func updateClauses(u models.ProjectUpdate) map[string]any {
	clauses := make(map[string]any)
	if u.Title != nil {
		clauses["title"] = *u.Title
	}
	if u.Subtitle != nil {
		clauses["subtitle"] = *u.Subtitle
	}
	if u.Description != nil {
		clauses["description"] = *u.Description
	}
	if u.Goal != nil {
		clauses["goal"] = *u.Goal
	}
	if u.Pledged != nil {
		clauses["pledged"] = *u.Pledged
	}
	if u.DurationDays != nil {
		clauses["duration_days"] = *u.DurationDays
	}
	if u.Status != nil {
		clauses["status"] = *u.Status
	}
	if u.HeroImageURL != nil {
		clauses["hero_image_url"] = *u.HeroImageURL
	}
	if u.CategoryID != nil {
		clauses["category_id"] = *u.CategoryID
	}
	if u.BackerCount != nil {
		clauses["backer_count"] = *u.BackerCount
	}
	if u.EndDate != nil {
		clauses["end_date"] = *u.EndDate
	}

	return clauses
}

// GetProjectByID joins creator and category with INNER JOINs, so a dangling
// reference yields no row and therefore [ErrProjectNotFound].
func (r *projectRepository) GetProjectByID(ctx context.Context, id int64) (models.ProjectWithDetails, error) {
	log := logger.FromContext(ctx)

	columns := append(append(qualify("p", projectColumns), qualify("u", userColumns)...), qualify("c", categoryColumns)...)
	query, args, err := psql.Select(columns...).
		From("projects p").
		Join("users u ON u.id = p.creator_id").
		Join("categories c ON c.id = p.category_id").
		Where(sq.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return models.ProjectWithDetails{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	var details models.ProjectWithDetails
	var endDate sql.NullTime
	u, c := &details.Creator, &details.Category
	dest := append(projectDest(&details.Project, &endDate),
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Bio, &u.ProfileImageURL, &u.Role, &u.CreatedAt, &u.UpdatedAt,
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.IconName, &c.Color, &c.ProjectCount, &c.CreatedAt,
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProjectWithDetails{}, fmt.Errorf("project %d: %w", id, ErrProjectNotFound)
	}
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.GetProjectByID").Msg("error scanning project")
		return models.ProjectWithDetails{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	finishProject(&details.Project, endDate)

	if details.Rewards, err = r.rewardsOf(ctx, id); err != nil {
		return models.ProjectWithDetails{}, err
	}
	if details.Pledges, err = r.pledgesOf(ctx, id); err != nil {
		return models.ProjectWithDetails{}, err
	}

	return details, nil
}

func (r *projectRepository) rewardsOf(ctx context.Context, projectID int64) ([]models.Reward, error) {
	query, args, err := psql.Select(rewardColumns...).From("rewards").Where(sq.Eq{"project_id": projectID}).OrderBy("id").ToSql()
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	rewards := make([]models.Reward, 0)
	for rows.Next() {
		var rw models.Reward
		if err := rows.Scan(&rw.ID, &rw.ProjectID, &rw.Title, &rw.Amount, &rw.Description, &rw.Quantity,
			r.types.SQLScanner(&rw.ShippingRegions), &rw.CreatedAt); err != nil {
			return nil, errors.Join(ErrScanningRows, err)
		}
		rewards = append(rewards, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return rewards, nil
}

func (r *projectRepository) pledgesOf(ctx context.Context, projectID int64) ([]models.Pledge, error) {
	query, args, err := psql.Select(pledgeColumns...).From("pledges").Where(sq.Eq{"project_id": projectID}).OrderBy("id").ToSql()
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	pledges := make([]models.Pledge, 0)
	for rows.Next() {
		var p models.Pledge
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.UserID, &p.RewardID, &p.Amount, &p.PaymentStatus, &p.CreatedAt); err != nil {
			return nil, errors.Join(ErrScanningRows, err)
		}
		pledges = append(pledges, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return pledges, nil
}

// GetProjects filters through an INNER JOIN on the category slug, so an
// unknown slug yields an empty result.
func (r *projectRepository) GetProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	builder := psql.Select(qualify("p", projectColumns)...).From("projects p")
	if filter.CategorySlug != "" {
		builder = builder.Join("categories c ON c.id = p.category_id").Where(sq.Eq{"c.slug": filter.CategorySlug})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"p.status": *filter.Status})
	}
	builder = builder.OrderBy("p.created_at DESC", "p.id DESC")
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	return r.queryProjects(ctx, builder, "*projectRepository.GetProjects")
}

func (r *projectRepository) GetFeaturedProjects(ctx context.Context, limit int) ([]models.Project, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}

	builder := psql.Select(projectColumns...).
		From(models.Project{}.TableName()).
		Where(sq.Eq{"status": models.ProjectStatusLive}).
		OrderBy("pledged DESC", "id ASC").
		Limit(uint64(limit))

	return r.queryProjects(ctx, builder, "*projectRepository.GetFeaturedProjects")
}

func (r *projectRepository) SearchProjects(ctx context.Context, query string, limit int) ([]models.Project, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	pattern := containsPattern(query)

	builder := psql.Select(projectColumns...).
		From(models.Project{}.TableName()).
		Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"subtitle": pattern},
			sq.ILike{"description": pattern},
		}).
		OrderBy("id ASC").
		Limit(uint64(limit))

	return r.queryProjects(ctx, builder, "*projectRepository.SearchProjects")
}

func (r *projectRepository) queryProjects(ctx context.Context, builder sq.SelectBuilder, caller string) ([]models.Project, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", caller).Msg("error querying projects")
		return nil, errors.Join(ErrExecutingQuery, err)
	}

	return scanProjects(rows)
}

func (r *projectRepository) CreateReward(ctx context.Context, reward models.Reward) (models.Reward, error) {
	if reward.Amount.IsNegative() {
		return models.Reward{}, fmt.Errorf("reward amount %s: %w", reward.Amount, ErrNegativeAmount)
	}
	if reward.ShippingRegions == nil {
		reward.ShippingRegions = []string{}
	}

	query, args, err := psql.Insert("rewards").
		Columns("project_id", "title", "amount", "description", "quantity", "shipping_regions").
		Values(reward.ProjectID, reward.Title, reward.Amount, reward.Description, reward.Quantity, reward.ShippingRegions).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.Reward{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&reward.ID, &reward.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectRepository.CreateReward").Msg("error inserting reward")
		return models.Reward{}, mapWriteError(err, nil)
	}

	return reward, nil
}

func (r *projectRepository) CreatePledge(ctx context.Context, pledge models.Pledge) (models.Pledge, error) {
	if !pledge.Amount.IsPositive() {
		return models.Pledge{}, ErrInvalidPledgeAmount
	}
	if pledge.PaymentStatus == "" {
		pledge.PaymentStatus = models.PaymentStatusPending
	}

	query, args, err := psql.Insert("pledges").
		Columns("project_id", "user_id", "reward_id", "amount", "payment_status").
		Values(pledge.ProjectID, pledge.UserID, pledge.RewardID, pledge.Amount, pledge.PaymentStatus).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.Pledge{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&pledge.ID, &pledge.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectRepository.CreatePledge").Msg("error inserting pledge")
		return models.Pledge{}, mapWriteError(err, nil)
	}

	return pledge, nil
}
