package teams

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/bikeathon/internal/domain"
	"github.com/GlebRadaev/bikeathon/internal/dto"
	teamservice "github.com/GlebRadaev/bikeathon/internal/service/teamservice"
	"github.com/GlebRadaev/bikeathon/pkg/currency"
	"github.com/GlebRadaev/bikeathon/pkg/utils"
	"github.com/GlebRadaev/bikeathon/pkg/validate"
)

type Service interface {
	List(ctx context.Context) ([]teamservice.TeamInfo, error)
	Create(ctx context.Context, name, color string) (*domain.Team, error)
	Update(ctx context.Context, teamID int, params teamservice.UpdateParams) (*domain.Team, error)
}

type TeamHandler struct {
	teamService Service
}

func New(teamService Service) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// List godoc
//
//	@Summary		List teams
//	@Description	Teams ordered by total raised, with their current rosters.
//	@Tags			Teams
//	@Produce		json
//	@Success		200	{array}		dto.TeamResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/teams [get]
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	infos, err := h.teamService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TeamResponseDTO, 0, len(infos))
	for _, info := range infos {
		response = append(response, toTeamResponse(info))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Create godoc
//
//	@Summary	Create a team
//	@Tags		Teams
//	@Security	AdminAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreateTeamRequestDTO	true	"Team payload"
//	@Success	201		{object}	dto.TeamResponseDTO
//	@Failure	400		{object}	utils.Response	"Malformed payload"
//	@Failure	401		{object}	utils.Response	"Missing or invalid admin credential"
//	@Failure	409		{object}	utils.Response	"Team name already in use"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/teams [post]
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTeamRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Team name must be a non-empty string")
		return
	}
	if !validate.IsHexColor(req.Color) {
		utils.RespondWithError(w, http.StatusBadRequest, "Color must be a valid hex color (e.g., #f47321)")
		return
	}

	team, err := h.teamService.Create(r.Context(), name, req.Color)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toTeamResponse(teamservice.TeamInfo{Team: *team}))
}

// Update godoc
//
//	@Summary	Edit a team
//	@Tags		Teams
//	@Security	AdminAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Team id"
//	@Param		request	body		dto.UpdateTeamRequestDTO	true	"Fields to update"
//	@Success	200		{object}	dto.TeamResponseDTO
//	@Failure	400		{object}	utils.Response	"Malformed payload or nothing to update"
//	@Failure	401		{object}	utils.Response	"Missing or invalid admin credential"
//	@Failure	404		{object}	utils.Response	"Team not found"
//	@Failure	409		{object}	utils.Response	"Team name already in use"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/teams/{id} [put]
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	teamID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid team ID")
		return
	}

	var req dto.UpdateTeamRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	params := teamservice.UpdateParams{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "Team name must be a non-empty string")
			return
		}
		params.Name = &name
	}
	if req.Color != nil {
		if !validate.IsHexColor(*req.Color) {
			utils.RespondWithError(w, http.StatusBadRequest, "Color must be a valid hex color (e.g., #f47321)")
			return
		}
		params.Color = req.Color
	}

	team, err := h.teamService.Update(r.Context(), teamID, params)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTeamResponse(teamservice.TeamInfo{Team: *team}))
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, teamservice.ErrNothingToUpdate):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, teamservice.ErrTeamNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, teamservice.ErrTeamNameExists):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toTeamResponse(info teamservice.TeamInfo) dto.TeamResponseDTO {
	athletes := make([]dto.TeamAthleteDTO, 0, len(info.Athletes))
	for _, athlete := range info.Athletes {
		athletes = append(athletes, dto.TeamAthleteDTO{
			ID:          athlete.ID,
			Name:        athlete.Name,
			TotalRaised: currency.String(athlete.TotalRaisedCents),
		})
	}
	return dto.TeamResponseDTO{
		ID:           info.ID,
		Name:         info.Name,
		Color:        info.Color,
		TotalRaised:  currency.String(info.TotalRaisedCents),
		AthleteCount: len(info.Athletes),
		Athletes:     athletes,
	}
}
