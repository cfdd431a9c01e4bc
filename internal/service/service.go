package service

import (
	"github.com/GlebRadaev/bikeathon/internal/config"
	"github.com/GlebRadaev/bikeathon/internal/handlers/athletes"
	"github.com/GlebRadaev/bikeathon/internal/handlers/payments"
	"github.com/GlebRadaev/bikeathon/internal/handlers/stats"
	"github.com/GlebRadaev/bikeathon/internal/handlers/teams"
	"github.com/GlebRadaev/bikeathon/internal/pg"
	"github.com/GlebRadaev/bikeathon/internal/repo"
	athleteservice "github.com/GlebRadaev/bikeathon/internal/service/athleteservice"
	donationservice "github.com/GlebRadaev/bikeathon/internal/service/donationservice"
	statsservice "github.com/GlebRadaev/bikeathon/internal/service/statsservice"
	teamservice "github.com/GlebRadaev/bikeathon/internal/service/teamservice"
)

type Services struct {
	AthleteService  athletes.Service
	TeamService     teams.Service
	DonationService payments.Service
	StatsService    stats.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, paymentClient donationservice.PaymentClient, cfg *config.Config) *Services {
	athleteService := athleteservice.New(repo.AthleteRepo, repo.TeamRepo, repo.DonationRepo, txManager, cfg.DefaultGoalCents(), cfg.DefaultMilesGoal)
	teamService := teamservice.New(repo.TeamRepo, repo.AthleteRepo)
	donationService := donationservice.New(repo.DonationRepo, repo.AthleteRepo, repo.TeamRepo, paymentClient, txManager)
	statsService := statsservice.New(repo.DonationRepo, repo.AthleteRepo, repo.TeamRepo)

	return &Services{
		AthleteService:  athleteService,
		TeamService:     teamService,
		DonationService: donationService,
		StatsService:    statsService,
	}
}
