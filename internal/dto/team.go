package dto

type CreateTeamRequestDTO struct {
	Name  string `json:"name" example:"Red"`
	Color string `json:"color" example:"#f47321"`
}

type UpdateTeamRequestDTO struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

type TeamAthleteDTO struct {
	ID          int    `json:"id" example:"1"`
	Name        string `json:"name" example:"Jane Doe"`
	TotalRaised string `json:"totalRaised" example:"50.00"`
}

type TeamResponseDTO struct {
	ID           int              `json:"id" example:"1"`
	Name         string           `json:"name" example:"Red"`
	Color        string           `json:"color" example:"#f47321"`
	TotalRaised  string           `json:"totalRaised" example:"50.00"`
	AthleteCount int              `json:"athleteCount" example:"5"`
	Athletes     []TeamAthleteDTO `json:"athletes,omitempty"`
}
