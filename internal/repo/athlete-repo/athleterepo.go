package athleterepo

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

const athleteColumns = `id, slug, name, bio, photo_url, goal_cents, miles_goal, total_raised_cents, team_id, created_at, updated_at`

func scanAthlete(row pgx.Row, athlete *domain.Athlete) error {
	return row.Scan(
		&athlete.ID, &athlete.Slug, &athlete.Name, &athlete.Bio, &athlete.PhotoURL,
		&athlete.GoalCents, &athlete.MilesGoal, &athlete.TotalRaisedCents, &athlete.TeamID,
		&athlete.CreatedAt, &athlete.UpdatedAt,
	)
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Athlete, error) {
	query := `
        SELECT ` + athleteColumns + `
        FROM athletes
        WHERE id = $1
    `
	var athlete domain.Athlete
	err := scanAthlete(r.db.QueryRow(ctx, query, id), &athlete)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find athlete", zap.Error(err))
		return nil, err
	}
	return &athlete, nil
}

func (r *Repository) FindBySlug(ctx context.Context, slug string) (*domain.Athlete, error) {
	query := `
        SELECT ` + athleteColumns + `
        FROM athletes
        WHERE slug = $1
    `
	var athlete domain.Athlete
	err := scanAthlete(r.db.QueryRow(ctx, query, slug), &athlete)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find athlete by slug", zap.Error(err))
		return nil, err
	}
	return &athlete, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Athlete, error) {
	query := `
        SELECT ` + athleteColumns + `
        FROM athletes
        ORDER BY total_raised_cents DESC, name ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get athletes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var athletes []domain.Athlete
	for rows.Next() {
		var athlete domain.Athlete
		if err := scanAthlete(rows, &athlete); err != nil {
			zap.L().Error("can't scan athlete row", zap.Error(err))
			return nil, err
		}
		athletes = append(athletes, athlete)
	}
	return athletes, nil
}

func (r *Repository) Save(ctx context.Context, athlete *domain.Athlete) error {
	query := `
        INSERT INTO athletes (slug, name, bio, photo_url, goal_cents, miles_goal, team_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, total_raised_cents, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		athlete.Slug, athlete.Name, athlete.Bio, athlete.PhotoURL,
		athlete.GoalCents, athlete.MilesGoal, athlete.TeamID,
	).Scan(&athlete.ID, &athlete.TotalRaisedCents, &athlete.CreatedAt, &athlete.UpdatedAt)
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't save athlete", zap.Error(err))
		}
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, athlete *domain.Athlete) error {
	query := `
        UPDATE athletes
        SET slug = $1, name = $2, bio = $3, photo_url = $4, goal_cents = $5,
            miles_goal = $6, team_id = $7, updated_at = now()
        WHERE id = $8
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			athlete.Slug, athlete.Name, athlete.Bio, athlete.PhotoURL,
			athlete.GoalCents, athlete.MilesGoal, athlete.TeamID, athlete.ID,
		)
		if err != nil {
			if !pg.IsUniqueViolation(err) {
				zap.L().Error("failed to update athlete", zap.Error(err))
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

// IncrementTotalRaised atomically adds amountCents to the athlete's running
// total and returns the athlete's current team id. The increment happens in
// SQL so concurrent donations never lose updates.
func (r *Repository) IncrementTotalRaised(ctx context.Context, athleteID int, amountCents int64) (int, error) {
	query := `
        UPDATE athletes
        SET total_raised_cents = total_raised_cents + $1, updated_at = now()
        WHERE id = $2
        RETURNING team_id
    `
	var teamID int
	err := r.db.QueryRow(ctx, query, amountCents, athleteID).Scan(&teamID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, pgx.ErrNoRows
	}
	if err != nil {
		zap.L().Error("can't increment athlete total", zap.Error(err))
		return 0, err
	}
	return teamID, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(id) FROM athletes`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count athletes", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) SumMilesGoal(ctx context.Context) (int, error) {
	var miles int
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(miles_goal), 0) FROM athletes`).Scan(&miles)
	if err != nil {
		zap.L().Error("can't sum miles goals", zap.Error(err))
		return 0, err
	}
	return miles, nil
}
