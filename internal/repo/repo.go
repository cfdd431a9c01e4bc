package repo

import (
	"github.com/GlebRadaev/bikeathon/internal/pg"
	athleterepo "github.com/GlebRadaev/bikeathon/internal/repo/athlete-repo"
	donationrepo "github.com/GlebRadaev/bikeathon/internal/repo/donation-repo"
	teamrepo "github.com/GlebRadaev/bikeathon/internal/repo/team-repo"
)

// Repositories exposes the concrete repos; each one satisfies the narrow
// interfaces declared by the services that consume it.
type Repositories struct {
	AthleteRepo  *athleterepo.Repository
	TeamRepo     *teamrepo.Repository
	DonationRepo *donationrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		AthleteRepo:  athleterepo.New(conn, txManager),
		TeamRepo:     teamrepo.New(conn, txManager),
		DonationRepo: donationrepo.New(conn),
	}
}
