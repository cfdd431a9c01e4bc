package domain

import "time"

// Currency amounts are stored as integer minor units (cents) so that ledger
// arithmetic stays exact.

type Team struct {
	ID               int       `db:"id"`
	Name             string    `db:"name"`
	Color            string    `db:"color"`
	TotalRaisedCents int64     `db:"total_raised_cents"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type Athlete struct {
	ID               int       `db:"id"`
	Slug             string    `db:"slug"`
	Name             string    `db:"name"`
	Bio              *string   `db:"bio"`
	PhotoURL         *string   `db:"photo_url"`
	GoalCents        int64     `db:"goal_cents"`
	MilesGoal        int       `db:"miles_goal"`
	TotalRaisedCents int64     `db:"total_raised_cents"`
	TeamID           int       `db:"team_id"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// Donation is append-only: rows are never updated or deleted. PaymentIntentID
// is the external processor's id and doubles as the idempotency key.
type Donation struct {
	ID              int       `db:"id"`
	AmountCents     int64     `db:"amount_cents"`
	AthleteID       int       `db:"athlete_id"`
	PaymentIntentID string    `db:"payment_intent_id"`
	CreatedAt       time.Time `db:"created_at"`
}
