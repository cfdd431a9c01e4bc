package statsservice

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type DonationRepo interface {
	Aggregate(ctx context.Context) (int64, int, error)
}

type AthleteRepo interface {
	Count(ctx context.Context) (int, error)
	SumMilesGoal(ctx context.Context) (int, error)
}

type TeamRepo interface {
	Count(ctx context.Context) (int, error)
}

type Service struct {
	donationRepo DonationRepo
	athleteRepo  AthleteRepo
	teamRepo     TeamRepo
}

func New(donationRepo DonationRepo, athleteRepo AthleteRepo, teamRepo TeamRepo) *Service {
	return &Service{
		donationRepo: donationRepo,
		athleteRepo:  athleteRepo,
		teamRepo:     teamRepo,
	}
}

type Stats struct {
	TotalRaisedCents     int64
	TotalMiles           int
	TotalDonations       int
	AthleteCount         int
	TeamCount            int
	AverageDonationCents int64
}

// GetStats aggregates the read-side fundraiser totals. The queries are
// independent, so they run concurrently.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, count, err := s.donationRepo.Aggregate(gCtx)
		if err != nil {
			return err
		}
		stats.TotalRaisedCents = total
		stats.TotalDonations = count
		return nil
	})
	g.Go(func() error {
		count, err := s.athleteRepo.Count(gCtx)
		if err != nil {
			return err
		}
		stats.AthleteCount = count
		return nil
	})
	g.Go(func() error {
		miles, err := s.athleteRepo.SumMilesGoal(gCtx)
		if err != nil {
			return err
		}
		stats.TotalMiles = miles
		return nil
	})
	g.Go(func() error {
		count, err := s.teamRepo.Count(gCtx)
		if err != nil {
			return err
		}
		stats.TeamCount = count
		return nil
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to aggregate stats", zap.Error(err))
		return nil, err
	}

	if stats.TotalDonations > 0 {
		stats.AverageDonationCents = stats.TotalRaisedCents / int64(stats.TotalDonations)
	}
	return &stats, nil
}
