package teamservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/bikeathon/internal/domain"
	"github.com/GlebRadaev/bikeathon/internal/pg"
	"go.uber.org/zap"
)

type TeamRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Team, error)
	FindByName(ctx context.Context, name string) (*domain.Team, error)
	FindAll(ctx context.Context) ([]domain.Team, error)
	Save(ctx context.Context, team *domain.Team) error
	Update(ctx context.Context, team *domain.Team) error
}

type AthleteRepo interface {
	FindAll(ctx context.Context) ([]domain.Athlete, error)
}

type Service struct {
	teamRepo    TeamRepo
	athleteRepo AthleteRepo
}

func New(teamRepo TeamRepo, athleteRepo AthleteRepo) *Service {
	return &Service{
		teamRepo:    teamRepo,
		athleteRepo: athleteRepo,
	}
}

var (
	ErrTeamNotFound    = errors.New("team not found")
	ErrTeamNameExists  = errors.New("team with this name already exists")
	ErrNothingToUpdate = errors.New("no valid fields to update")
)

// TeamInfo is a team with its current roster attached.
type TeamInfo struct {
	domain.Team
	Athletes []domain.Athlete
}

type UpdateParams struct {
	Name  *string
	Color *string
}

func (s *Service) List(ctx context.Context) ([]TeamInfo, error) {
	teams, err := s.teamRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	athletes, err := s.athleteRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rosters := make(map[int][]domain.Athlete)
	for _, athlete := range athletes {
		rosters[athlete.TeamID] = append(rosters[athlete.TeamID], athlete)
	}

	infos := make([]TeamInfo, 0, len(teams))
	for _, team := range teams {
		infos = append(infos, TeamInfo{Team: team, Athletes: rosters[team.ID]})
	}
	return infos, nil
}

func (s *Service) Create(ctx context.Context, name, color string) (*domain.Team, error) {
	existing, err := s.teamRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTeamNameExists
	}

	team := &domain.Team{Name: name, Color: color}
	if err := s.teamRepo.Save(ctx, team); err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrTeamNameExists
		}
		zap.L().Error("can't save team", zap.Error(err))
		return nil, err
	}
	return team, nil
}

func (s *Service) Update(ctx context.Context, teamID int, params UpdateParams) (*domain.Team, error) {
	if params.Name == nil && params.Color == nil {
		return nil, ErrNothingToUpdate
	}

	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	if params.Name != nil && *params.Name != team.Name {
		existing, err := s.teamRepo.FindByName(ctx, *params.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrTeamNameExists
		}
		team.Name = *params.Name
	}
	if params.Color != nil {
		team.Color = *params.Color
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrTeamNameExists
		}
		zap.L().Error("can't update team", zap.Int("teamID", teamID), zap.Error(err))
		return nil, err
	}
	return team, nil
}
