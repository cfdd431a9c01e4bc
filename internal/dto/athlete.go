package dto

import "encoding/json"

type CreateAthleteRequestDTO struct {
	Name      string      `json:"name" example:"Jane Doe"`
	Slug      string      `json:"slug,omitempty" example:"jane-doe"`
	Bio       *string     `json:"bio,omitempty"`
	PhotoURL  *string     `json:"photoUrl,omitempty"`
	Goal      json.Number `json:"goal,omitempty" swaggertype:"number" example:"500"`
	MilesGoal *int        `json:"milesGoal,omitempty" example:"100"`
	TeamID    int         `json:"teamId" example:"1"`
}

type UpdateAthleteRequestDTO struct {
	Name      *string      `json:"name,omitempty"`
	Slug      *string      `json:"slug,omitempty"`
	Bio       *string      `json:"bio,omitempty"`
	PhotoURL  *string      `json:"photoUrl,omitempty"`
	Goal      *json.Number `json:"goal,omitempty" swaggertype:"number"`
	MilesGoal *int         `json:"milesGoal,omitempty"`
	TeamID    *int         `json:"teamId,omitempty"`
}

type AthleteResponseDTO struct {
	ID            int     `json:"id" example:"1"`
	Slug          string  `json:"slug" example:"jane-doe"`
	Name          string  `json:"name" example:"Jane Doe"`
	Bio           *string `json:"bio,omitempty"`
	PhotoURL      *string `json:"photoUrl,omitempty"`
	Goal          string  `json:"goal" example:"500.00"`
	MilesGoal     int     `json:"milesGoal" example:"100"`
	TotalRaised   string  `json:"totalRaised" example:"50.00"`
	Miles         int     `json:"miles" example:"50"`
	TeamID        int     `json:"teamId" example:"1"`
	TeamName      string  `json:"teamName,omitempty" example:"Red"`
	TeamColor     string  `json:"teamColor,omitempty" example:"#f47321"`
	DonationCount int     `json:"donationCount" example:"3"`
}
