package athleteservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/bikeathon/internal/domain"
	"github.com/GlebRadaev/bikeathon/internal/pg"
	"github.com/GlebRadaev/bikeathon/pkg/validate"
	"go.uber.org/zap"
)

type AthleteRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Athlete, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Athlete, error)
	FindAll(ctx context.Context) ([]domain.Athlete, error)
	Save(ctx context.Context, athlete *domain.Athlete) error
	Update(ctx context.Context, athlete *domain.Athlete) error
}

type TeamRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Team, error)
	FindAll(ctx context.Context) ([]domain.Team, error)
	RecalculateTotalRaised(ctx context.Context, teamID int) error
}

type DonationRepo interface {
	CountByAthleteID(ctx context.Context, athleteID int) (int, error)
	CountPerAthlete(ctx context.Context) (map[int]int, error)
}

type Service struct {
	athleteRepo      AthleteRepo
	teamRepo         TeamRepo
	donationRepo     DonationRepo
	txManager        pg.TXManager
	defaultGoalCents int64
	defaultMilesGoal int
}

func New(athleteRepo AthleteRepo, teamRepo TeamRepo, donationRepo DonationRepo, txManager pg.TXManager, defaultGoalCents int64, defaultMilesGoal int) *Service {
	return &Service{
		athleteRepo:      athleteRepo,
		teamRepo:         teamRepo,
		donationRepo:     donationRepo,
		txManager:        txManager,
		defaultGoalCents: defaultGoalCents,
		defaultMilesGoal: defaultMilesGoal,
	}
}

var (
	ErrAthleteNotFound = errors.New("athlete not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrSlugExists      = errors.New("athlete with this slug already exists")
	ErrNothingToUpdate = errors.New("no valid fields to update")
)

// AthleteInfo is the read-side view of an athlete with its team and donation
// count attached.
type AthleteInfo struct {
	domain.Athlete
	TeamName      string
	TeamColor     string
	DonationCount int
}

type CreateParams struct {
	Name      string
	Slug      string
	Bio       *string
	PhotoURL  *string
	GoalCents *int64
	MilesGoal *int
	TeamID    int
}

// UpdateParams carries the optional admin-edit fields; nil means the field
// was not present in the request.
type UpdateParams struct {
	Name      *string
	Slug      *string
	Bio       *string
	PhotoURL  *string
	GoalCents *int64
	MilesGoal *int
	TeamID    *int
}

func (p UpdateParams) empty() bool {
	return p.Name == nil && p.Slug == nil && p.Bio == nil && p.PhotoURL == nil &&
		p.GoalCents == nil && p.MilesGoal == nil && p.TeamID == nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*domain.Athlete, error) {
	team, err := s.teamRepo.FindByID(ctx, params.TeamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	slug := params.Slug
	if slug == "" {
		slug = validate.Slugify(params.Name)
	}
	existing, err := s.athleteRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugExists
	}

	athlete := &domain.Athlete{
		Slug:      slug,
		Name:      params.Name,
		Bio:       params.Bio,
		PhotoURL:  params.PhotoURL,
		GoalCents: s.defaultGoalCents,
		MilesGoal: s.defaultMilesGoal,
		TeamID:    params.TeamID,
	}
	if params.GoalCents != nil {
		athlete.GoalCents = *params.GoalCents
	}
	if params.MilesGoal != nil {
		athlete.MilesGoal = *params.MilesGoal
	}

	if err := s.athleteRepo.Save(ctx, athlete); err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrSlugExists
		}
		zap.L().Error("can't save athlete", zap.Error(err))
		return nil, err
	}
	return athlete, nil
}

// Update applies an admin edit. When the edit moves the athlete to a another
// team, the old and new team totals are rebuilt from their rosters inside the
// same transaction as the move, so team aggregates stay exact even if they had
// drifted before.
func (s *Service) Update(ctx context.Context, athleteID int, params UpdateParams) (*domain.Athlete, error) {
	if params.empty() {
		return nil, ErrNothingToUpdate
	}

	athlete, err := s.athleteRepo.FindByID(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	if athlete == nil {
		return nil, ErrAthleteNotFound
	}
	oldTeamID := athlete.TeamID

	if params.Slug != nil && *params.Slug != athlete.Slug {
		existing, err := s.athleteRepo.FindBySlug(ctx, *params.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrSlugExists
		}
		athlete.Slug = *params.Slug
	}
	if params.Name != nil {
		athlete.Name = *params.Name
	}
	if params.Bio != nil {
		athlete.Bio = params.Bio
	}
	if params.PhotoURL != nil {
		athlete.PhotoURL = params.PhotoURL
	}
	if params.GoalCents != nil {
		athlete.GoalCents = *params.GoalCents
	}
	if params.MilesGoal != nil {
		athlete.MilesGoal = *params.MilesGoal
	}

	if params.TeamID != nil && *params.TeamID != oldTeamID {
		team, err := s.teamRepo.FindByID(ctx, *params.TeamID)
		if err != nil {
			return nil, err
		}
		if team == nil {
			return nil, ErrTeamNotFound
		}
		athlete.TeamID = *params.TeamID

		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			if err := s.athleteRepo.Update(ctx, athlete); err != nil {
				return err
			}
			if err := s.teamRepo.RecalculateTotalRaised(ctx, oldTeamID); err != nil {
				return err
			}
			return s.teamRepo.RecalculateTotalRaised(ctx, athlete.TeamID)
		})
		if err != nil {
			if pg.IsUniqueViolation(err) {
				return nil, ErrSlugExists
			}
			zap.L().Error("can't reassign athlete team", zap.Int("athleteID", athleteID), zap.Error(err))
			return nil, err
		}
		return athlete, nil
	}

	if err := s.athleteRepo.Update(ctx, athlete); err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrSlugExists
		}
		zap.L().Error("can't update athlete", zap.Int("athleteID", athleteID), zap.Error(err))
		return nil, err
	}
	return athlete, nil
}

func (s *Service) List(ctx context.Context) ([]AthleteInfo, error) {
	athletes, err := s.athleteRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := s.teamRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.donationRepo.CountPerAthlete(ctx)
	if err != nil {
		return nil, err
	}

	teamsByID := make(map[int]domain.Team, len(teams))
	for _, team := range teams {
		teamsByID[team.ID] = team
	}

	infos := make([]AthleteInfo, 0, len(athletes))
	for _, athlete := range athletes {
		info := AthleteInfo{Athlete: athlete, DonationCount: counts[athlete.ID]}
		if team, ok := teamsByID[athlete.TeamID]; ok {
			info.TeamName = team.Name
			info.TeamColor = team.Color
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*AthleteInfo, error) {
	athlete, err := s.athleteRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if athlete == nil {
		return nil, ErrAthleteNotFound
	}

	info := &AthleteInfo{Athlete: *athlete}
	if team, err := s.teamRepo.FindByID(ctx, athlete.TeamID); err == nil && team != nil {
		info.TeamName = team.Name
		info.TeamColor = team.Color
	}
	count, err := s.donationRepo.CountByAthleteID(ctx, athlete.ID)
	if err != nil {
		return nil, err
	}
	info.DonationCount = count
	return info, nil
}
