package donationrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/bikeathon/internal/domain"
	"github.com/GlebRadaev/bikeathon/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*domain.Donation, error) {
	query := `
        SELECT id, amount_cents, athlete_id, payment_intent_id, created_at
        FROM donations
        WHERE payment_intent_id = $1
    `
	row := r.db.QueryRow(ctx, query, paymentIntentID)

	var donation domain.Donation
	err := row.Scan(&donation.ID, &donation.AmountCents, &donation.AthleteID, &donation.PaymentIntentID, &donation.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find donation", zap.Error(err))
		return nil, err
	}
	return &donation, nil
}

func (r *Repository) Save(ctx context.Context, donation *domain.Donation) error {
	query := `
        INSERT INTO donations (amount_cents, athlete_id, payment_intent_id)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, donation.AmountCents, donation.AthleteID, donation.PaymentIntentID).
		Scan(&donation.ID, &donation.CreatedAt)
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't save donation", zap.Error(err))
		}
		return err
	}
	return nil
}

func (r *Repository) FindByAthleteID(ctx context.Context, athleteID int) ([]domain.Donation, error) {
	query := `
        SELECT id, amount_cents, athlete_id, payment_intent_id, created_at
        FROM donations
        WHERE athlete_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, athleteID)
	if err != nil {
		zap.L().Error("can't get donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		var donation domain.Donation
		err := rows.Scan(&donation.ID, &donation.AmountCents, &donation.AthleteID, &donation.PaymentIntentID, &donation.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan donation row", zap.Error(err))
			return nil, err
		}
		donations = append(donations, donation)
	}
	return donations, nil
}

func (r *Repository) CountByAthleteID(ctx context.Context, athleteID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(id) FROM donations WHERE athlete_id = $1`, athleteID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count donations", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// CountPerAthlete returns donation counts keyed by athlete id.
func (r *Repository) CountPerAthlete(ctx context.Context) (map[int]int, error) {
	query := `
        SELECT athlete_id, COUNT(id)
        FROM donations
        GROUP BY athlete_id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't count donations per athlete", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var athleteID, count int
		if err := rows.Scan(&athleteID, &count); err != nil {
			zap.L().Error("can't scan donation count row", zap.Error(err))
			return nil, err
		}
		counts[athleteID] = count
	}
	return counts, nil
}

// Aggregate returns the sum and count over all donations.
func (r *Repository) Aggregate(ctx context.Context) (int64, int, error) {
	query := `
        SELECT COALESCE(SUM(amount_cents), 0), COUNT(id)
        FROM donations
    `
	var totalCents int64
	var count int
	err := r.db.QueryRow(ctx, query).Scan(&totalCents, &count)
	if err != nil {
		zap.L().Error("can't aggregate donations", zap.Error(err))
		return 0, 0, err
	}
	return totalCents, count, nil
}
