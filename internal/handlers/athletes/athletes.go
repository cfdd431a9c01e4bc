package athletes

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
	athleteservice "github.com/GlebRadaev/bikeathon/internal/service/athleteservice"
	"github.com/GlebRadaev/bikeathon/pkg/currency"
	"github.com/GlebRadaev/bikeathon/pkg/utils"
	"github.com/GlebRadaev/bikeathon/pkg/validate"
)

type Service interface {
	List(ctx context.Context) ([]athleteservice.AthleteInfo, error)
	GetBySlug(ctx context.Context, slug string) (*athleteservice.AthleteInfo, error)
	Create(ctx context.Context, params athleteservice.CreateParams) (*domain.Athlete, error)
	Update(ctx context.Context, athleteID int, params athleteservice.UpdateParams) (*domain.Athlete, error)
}

type AthleteHandler struct {
	athleteService Service
}

func New(athleteService Service) *AthleteHandler {
	return &AthleteHandler{
		athleteService: athleteService,
	}
}

// List godoc
//
//	@Summary	List athletes
//	@Tags		Athletes
//	@Produce	json
//	@Success	200	{array}		dto.AthleteResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/athletes [get]
func (h *AthleteHandler) List(w http.ResponseWriter, r *http.Request) {
	infos, err := h.athleteService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.AthleteResponseDTO, 0, len(infos))
	for _, info := range infos {
		response = append(response, toAthleteResponse(info))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetBySlug godoc
//
//	@Summary	Get an athlete by slug
//	@Tags		Athletes
//	@Produce	json
//	@Param		slug	path		string	true	"Athlete slug"
//	@Success	200		{object}	dto.AthleteResponseDTO
//	@Failure	404		{object}	utils.Response	"Athlete not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/athletes/{slug} [get]
func (h *AthleteHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	info, err := h.athleteService.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, athleteservice.ErrAthleteNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAthleteResponse(*info))
}

// Create godoc
//
//	@Summary		Create an athlete
//	@Description	Administrative endpoint. The slug is derived from the name when omitted; the goal falls back to the configured default.
//	@Tags			Athletes
//	@Security		AdminAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAthleteRequestDTO	true	"Athlete payload"
//	@Success		201		{object}	dto.AthleteResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed payload"
//	@Failure		401		{object}	utils.Response	"Missing or invalid admin credential"
//	@Failure		404		{object}	utils.Response	"Team not found"
//	@Failure		409		{object}	utils.Response	"Slug already in use"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/athletes [post]
func (h *AthleteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAthleteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Athlete name must be a non-empty string")
		return
	}

	params := athleteservice.CreateParams{
		Name:     name,
		Bio:      req.Bio,
		PhotoURL: req.PhotoURL,
		TeamID:   req.TeamID,
	}

	if req.Slug != "" {
		slug := strings.ToLower(strings.TrimSpace(req.Slug))
		if !validate.IsSlug(slug) {
			utils.RespondWithError(w, http.StatusBadRequest, "Slug must be URL-friendly (lowercase letters, numbers, and hyphens only)")
			return
		}
		params.Slug = slug
	}
	if req.Goal != "" {
		goalCents, err := currency.ParseMajor(req.Goal.String())
		if err != nil || goalCents <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Goal must be a positive number")
			return
		}
		params.GoalCents = &goalCents
	}
	if req.MilesGoal != nil {
		if *req.MilesGoal <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Miles goal must be a positive integer")
			return
		}
		params.MilesGoal = req.MilesGoal
	}

	athlete, err := h.athleteService.Create(r.Context(), params)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toAthleteResponse(athleteservice.AthleteInfo{Athlete: *athlete}))
}

// Update godoc
//
//	@Summary		Edit an athlete
//	@Description	Administrative endpoint. All fields are optional. Changing the team rebuilds both affected team totals from their rosters in the same transaction.
//	@Tags			Athletes
//	@Security		AdminAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Athlete id"
//	@Param			request	body		dto.UpdateAthleteRequestDTO	true	"Fields to update"
//	@Success		200		{object}	dto.AthleteResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed payload or nothing to update"
//	@Failure		401		{object}	utils.Response	"Missing or invalid admin credential"
//	@Failure		404		{object}	utils.Response	"Athlete or team not found"
//	@Failure		409		{object}	utils.Response	"Slug already in use"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/athletes/{id} [put]
func (h *AthleteHandler) Update(w http.ResponseWriter, r *http.Request) {
	athleteID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid athlete ID")
		return
	}

	var req dto.UpdateAthleteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	params := athleteservice.UpdateParams{
		Bio:      req.Bio,
		PhotoURL: req.PhotoURL,
		TeamID:   req.TeamID,
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "Athlete name must be a non-empty string")
			return
		}
		params.Name = &name
	}
	if req.Slug != nil {
		slug := strings.ToLower(strings.TrimSpace(*req.Slug))
		if !validate.IsSlug(slug) {
			utils.RespondWithError(w, http.StatusBadRequest, "Slug must be URL-friendly (lowercase letters, numbers, and hyphens only)")
			return
		}
		params.Slug = &slug
	}
	if req.Goal != nil {
		goalCents, err := currency.ParseMajor(req.Goal.String())
		if err != nil || goalCents <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Goal must be a positive number")
			return
		}
		params.GoalCents = &goalCents
	}
	if req.MilesGoal != nil {
		if *req.MilesGoal <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Miles goal must be a positive integer")
			return
		}
		params.MilesGoal = req.MilesGoal
	}

	athlete, err := h.athleteService.Update(r.Context(), athleteID, params)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAthleteResponse(athleteservice.AthleteInfo{Athlete: *athlete}))
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, athleteservice.ErrNothingToUpdate):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, athleteservice.ErrAthleteNotFound), errors.Is(err, athleteservice.ErrTeamNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, athleteservice.ErrSlugExists):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toAthleteResponse(info athleteservice.AthleteInfo) dto.AthleteResponseDTO {
	return dto.AthleteResponseDTO{
		ID:            info.ID,
		Slug:          info.Slug,
		Name:          info.Name,
		Bio:           info.Bio,
		PhotoURL:      info.PhotoURL,
		Goal:          currency.String(info.GoalCents),
		MilesGoal:     info.MilesGoal,
		TotalRaised:   currency.String(info.TotalRaisedCents),
		Miles:         currency.Miles(info.TotalRaisedCents),
		TeamID:        info.TeamID,
		TeamName:      info.TeamName,
		TeamColor:     info.TeamColor,
		DonationCount: info.DonationCount,
	}
}
