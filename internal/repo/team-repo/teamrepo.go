package teamrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/bikeathon/internal/domain"
	"github.com/GlebRadaev/bikeathon/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Team, error) {
	query := `
        SELECT id, name, color, total_raised_cents, created_at, updated_at
        FROM teams
        WHERE id = $1
    `
	var team domain.Team
	err := r.db.QueryRow(ctx, query, id).
		Scan(&team.ID, &team.Name, &team.Color, &team.TotalRaisedCents, &team.CreatedAt, &team.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find team", zap.Error(err))
		return nil, err
	}
	return &team, nil
}

func (r *Repository) FindByName(ctx context.Context, name string) (*domain.Team, error) {
	query := `
        SELECT id, name, color, total_raised_cents, created_at, updated_at
        FROM teams
        WHERE name = $1
    `
	var team domain.Team
	err := r.db.QueryRow(ctx, query, name).
		Scan(&team.ID, &team.Name, &team.Color, &team.TotalRaisedCents, &team.CreatedAt, &team.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find team by name", zap.Error(err))
		return nil, err
	}
	return &team, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Team, error) {
	query := `
        SELECT id, name, color, total_raised_cents, created_at, updated_at
        FROM teams
        ORDER BY total_raised_cents DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get teams", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var team domain.Team
		err := rows.Scan(&team.ID, &team.Name, &team.Color, &team.TotalRaisedCents, &team.CreatedAt, &team.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan team row", zap.Error(err))
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, nil
}

func (r *Repository) Save(ctx context.Context, team *domain.Team) error {
	query := `
        INSERT INTO teams (name, color)
        VALUES ($1, $2)
        RETURNING id, total_raised_cents, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query, team.Name, team.Color).
		Scan(&team.ID, &team.TotalRaisedCents, &team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't save team", zap.Error(err))
		}
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, team *domain.Team) error {
	query := `
        UPDATE teams
        SET name = $1, color = $2, updated_at = now()
        WHERE id = $3
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, team.Name, team.Color, team.ID)
		if err != nil {
			if !pg.IsUniqueViolation(err) {
				zap.L().Error("failed to update team", zap.Error(err))
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// IncrementTotalRaised atomically adds amountCents to the team's running
// total. It reports whether a team row was actually updated.
func (r *Repository) IncrementTotalRaised(ctx context.Context, teamID int, amountCents int64) (bool, error) {
	query := `
        UPDATE teams
        SET total_raised_cents = total_raised_cents + $1, updated_at = now()
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, amountCents, teamID)
	if err != nil {
		zap.L().Error("can't increment team total", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// RecalculateTotalRaised rebuilds the team total from its current athlete
// roster instead of adjusting it incrementally, so any prior drift between
// athlete and team aggregates is corrected at the same time.
func (r *Repository) RecalculateTotalRaised(ctx context.Context, teamID int) error {
	query := `
        UPDATE teams
        SET total_raised_cents = COALESCE((
            SELECT SUM(total_raised_cents)
            FROM athletes
            WHERE team_id = $1
        ), 0), updated_at = now()
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, teamID)
	if err != nil {
		zap.L().Error("can't recalculate team total", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(id) FROM teams`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count teams", zap.Error(err))
		return 0, err
	}
	return count, nil
}
