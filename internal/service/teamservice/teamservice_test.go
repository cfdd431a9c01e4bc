package teamservice

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bikeathon/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockTeamRepo, *MockAthleteRepo) {
	ctrl := gomock.NewController(t)
	teamRepo := NewMockTeamRepo(ctrl)
	athleteRepo := NewMockAthleteRepo(ctrl)
	service := New(teamRepo, athleteRepo)
	defer ctrl.Finish()
	return service, teamRepo, athleteRepo
}

func strPtr(s string) *string { return &s }

func TestList(t *testing.T) {
	service, teamRepo, athleteRepo := NewMock(t)
	tests := []struct {
		name          string
		prepareMock   func()
		expectedInfos []TeamInfo
		expectedError error
	}{
		{
			name: "Teams listed with rosters",
			prepareMock: func() {
				teamRepo.EXPECT().FindAll(gomock.Any()).Return([]domain.Team{
					{ID: 1, Name: "Red", Color: "#ff0000", TotalRaisedCents: 5000},
					{ID: 2, Name: "Blue", Color: "#0000ff"},
				}, nil)
				athleteRepo.EXPECT().FindAll(gomock.Any()).Return([]domain.Athlete{
					{ID: 1, Name: "Jane Doe", TeamID: 1},
					{ID: 2, Name: "John Roe", TeamID: 1},
				}, nil)
			},
			expectedInfos: []TeamInfo{
				{
					Team: domain.Team{ID: 1, Name: "Red", Color: "#ff0000", TotalRaisedCents: 5000},
					Athletes: []domain.Athlete{
						{ID: 1, Name: "Jane Doe", TeamID: 1},
						{ID: 2, Name: "John Roe", TeamID: 1},
					},
				},
				{
					Team: domain.Team{ID: 2, Name: "Blue", Color: "#0000ff"},
				},
			},
			expectedError: nil,
		},
		{
			name: "Error listing teams",
			prepareMock: func() {
				teamRepo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			infos, err := service.List(context.Background())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedInfos, infos)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	service, teamRepo, _ := NewMock(t)
	tests := []struct {
		name          string
		teamName      string
		color         string
		prepareMock   func()
		expectedTeam  *domain.Team
		expectedError error
	}{
		{
			name:     "Team created successfully",
			teamName: "Red",
			color:    "#ff0000",
			prepareMock: func() {
				teamRepo.EXPECT().FindByName(gomock.Any(), "Red").Return(nil, nil)
				teamRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, team *domain.Team) error {
					team.ID = 1
					return nil
				})
			},
			expectedTeam:  &domain.Team{ID: 1, Name: "Red", Color: "#ff0000"},
			expectedError: nil,
		},
		{
			name:     "Name already taken",
			teamName: "Red",
			color:    "#ff0000",
			prepareMock: func() {
				teamRepo.EXPECT().FindByName(gomock.Any(), "Red").Return(&domain.Team{ID: 1, Name: "Red"}, nil)
			},
			expectedError: ErrTeamNameExists,
		},
		{
			name:     "Name race caught by the unique constraint",
			teamName: "Red",
			color:    "#ff0000",
			prepareMock: func() {
				teamRepo.EXPECT().FindByName(gomock.Any(), "Red").Return(nil, nil)
				teamRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505"})
			},
			expectedError: ErrTeamNameExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			team, err := service.Create(context.Background(), tt.teamName, tt.color)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTeam, team)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	service, teamRepo, _ := NewMock(t)
	tests := []struct {
		name          string
		teamID        int
		params        UpdateParams
		prepareMock   func()
		expectedTeam  *domain.Team
		expectedError error
	}{
		{
			name:   "Color updated",
			teamID: 1,
			params: UpdateParams{Color: strPtr("#00ff00")},
			prepareMock: func() {
				teamRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Team{ID: 1, Name: "Red", Color: "#ff0000"}, nil)
				teamRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedTeam:  &domain.Team{ID: 1, Name: "Red", Color: "#00ff00"},
			expectedError: nil,
		},
		{
			name:   "Rename checks name uniqueness",
			teamID: 1,
			params: UpdateParams{Name: strPtr("Crimson")},
			prepareMock: func() {
				teamRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Team{ID: 1, Name: "Red", Color: "#ff0000"}, nil)
				teamRepo.EXPECT().FindByName(gomock.Any(), "Crimson").Return(nil, nil)
				teamRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedTeam:  &domain.Team{ID: 1, Name: "Crimson", Color: "#ff0000"},
			expectedError: nil,
		},
		{
			name:   "Rename to a taken name rejected",
			teamID: 1,
			params: UpdateParams{Name: strPtr("Blue")},
			prepareMock: func() {
				teamRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Team{ID: 1, Name: "Red"}, nil)
				teamRepo.EXPECT().FindByName(gomock.Any(), "Blue").Return(&domain.Team{ID: 2, Name: "Blue"}, nil)
			},
			expectedError: ErrTeamNameExists,
		},
		{
			name:          "Empty edit rejected",
			teamID:        1,
			params:        UpdateParams{},
			expectedError: ErrNothingToUpdate,
		},
		{
			name:   "Team not found",
			teamID: 42,
			params: UpdateParams{Color: strPtr("#00ff00")},
			prepareMock: func() {
				teamRepo.EXPECT().FindByID(gomock.Any(), 42).Return(nil, nil)
			},
			expectedError: ErrTeamNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			team, err := service.Update(context.Background(), tt.teamID, tt.params)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTeam, team)
			}
		})
	}
}
