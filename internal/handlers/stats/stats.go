package stats

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/bikeathon/internal/dto"
	statsservice "github.com/GlebRadaev/bikeathon/internal/service/statsservice"
	"github.com/GlebRadaev/bikeathon/pkg/currency"
	"github.com/GlebRadaev/bikeathon/pkg/utils"
)

type Service interface {
	GetStats(ctx context.Context) (*statsservice.Stats, error)
}

type StatsHandler struct {
	statsService Service
}

func New(statsService Service) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// Get godoc
//
//	@Summary		Fundraiser totals
//	@Description	Aggregate read-side stats: total raised, donation count, athlete and team counts, miles goal sum.
//	@Tags			Stats
//	@Produce		json
//	@Success		200	{object}	dto.StatsResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/stats [get]
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GetStats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.StatsResponseDTO{
		TotalRaised:     currency.String(stats.TotalRaisedCents),
		TotalMiles:      stats.TotalMiles,
		TotalDonations:  stats.TotalDonations,
		AthleteCount:    stats.AthleteCount,
		TeamCount:       stats.TeamCount,
		AverageDonation: currency.String(stats.AverageDonationCents),
	})
}
