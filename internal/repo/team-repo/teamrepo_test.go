package teamrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bikeathon/internal/domain"
	"github.com/GlebRadaev/bikeathon/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		teamID    int
		mockSetup func()
		expectErr bool
		result    *domain.Team
	}{
		{
			name:   "Existing id returns team",
			teamID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "color", "total_raised_cents", "created_at", "updated_at"}).
					AddRow(1, "Red", "#ff0000", int64(5000), now, now)
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, name, color, total_raised_cents, created_at, updated_at
        FROM teams
        WHERE id = $1
    `)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Team{
				ID:               1,
				Name:             "Red",
				Color:            "#ff0000",
				TotalRaisedCents: 5000,
				CreatedAt:        now,
				UpdatedAt:        now,
			},
		},
		{
			name:   "Unknown id returns nil",
			teamID: 42,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, name, color, total_raised_cents, created_at, updated_at
        FROM teams
        WHERE id = $1
    `)).
					WithArgs(42).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			teamID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, name, color, total_raised_cents, created_at, updated_at
        FROM teams
        WHERE id = $1
    `)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.teamID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		team      *domain.Team
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully saves team",
			team: &domain.Team{Name: "Red", Color: "#ff0000"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO teams (name, color)
        VALUES ($1, $2)
        RETURNING id, total_raised_cents, created_at, updated_at
    `)).
					WithArgs("Red", "#ff0000").
					WillReturnRows(pgxmock.NewRows([]string{"id", "total_raised_cents", "created_at", "updated_at"}).
						AddRow(1, int64(0), now, now))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			team: &domain.Team{Name: "Red", Color: "#ff0000"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO teams (name, color)
        VALUES ($1, $2)
        RETURNING id, total_raised_cents, created_at, updated_at
    `)).
					WithArgs("Red", "#ff0000").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), tt.team)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, tt.team.ID)
			}
		})
	}
}

func TestRepository_IncrementTotalRaised(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name        string
		teamID      int
		amountCents int64
		mockSetup   func()
		expectErr   bool
		updated     bool
	}{
		{
			name:        "Existing team row is updated",
			teamID:      1,
			amountCents: 5000,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE teams
        SET total_raised_cents = total_raised_cents + $1, updated_at = now()
        WHERE id = $2
    `)).
					WithArgs(int64(5000), 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			updated: true,
		},
		{
			name:        "Missing team reports no update",
			teamID:      42,
			amountCents: 5000,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE teams
        SET total_raised_cents = total_raised_cents + $1, updated_at = now()
        WHERE id = $2
    `)).
					WithArgs(int64(5000), 42).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			updated: false,
		},
		{
			name:        "Database error",
			teamID:      1,
			amountCents: 5000,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE teams
        SET total_raised_cents = total_raised_cents + $1, updated_at = now()
        WHERE id = $2
    `)).
					WithArgs(int64(5000), 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			updated, err := repo.IncrementTotalRaised(context.Background(), tt.teamID, tt.amountCents)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.updated, updated)
			}
		})
	}
}

func TestRepository_RecalculateTotalRaised(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		teamID    int
		mockSetup func()
		expectErr bool
	}{
		{
			name:   "Rebuilds the total from the roster",
			teamID: 1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE teams
        SET total_raised_cents = COALESCE((
            SELECT SUM(total_raised_cents)
            FROM athletes
            WHERE team_id = $1
        ), 0), updated_at = now()
        WHERE id = $1
    `)).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name:   "Database error",
			teamID: 1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE teams
        SET total_raised_cents = COALESCE((
            SELECT SUM(total_raised_cents)
            FROM athletes
            WHERE team_id = $1
        ), 0), updated_at = now()
        WHERE id = $1
    `)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.RecalculateTotalRaised(context.Background(), tt.teamID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
