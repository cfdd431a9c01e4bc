package dto

import "encoding/json"

type CreatePaymentIntentRequestDTO struct {
	Amount    json.Number `json:"amount" swaggertype:"number" example:"50"`
	AthleteID int         `json:"athleteId" example:"1"`
}

type CreatePaymentIntentResponseDTO struct {
	ClientSecret    string `json:"clientSecret" example:"pi_abc123_secret_xyz"`
	PaymentIntentID string `json:"paymentIntentId" example:"pi_abc123"`
}

type WebhookResponseDTO struct {
	Received bool `json:"received" example:"true"`
}
