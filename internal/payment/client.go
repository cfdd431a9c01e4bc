package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/bikeathon/internal/config"
	"github.com/GlebRadaev/bikeathon/pkg/clients"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client talks to the external payment processor's API. It only authorizes
// charges; confirmation comes back asynchronously through the webhook.
type Client struct {
	url    string
	apiKey string
	client clients.HTTPClientI
}

func NewClient(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:    cfg.PaymentAddress,
		apiKey: cfg.PaymentKey,
		client: client,
	}
}

type IntentRequest struct {
	AmountCents int64
	AthleteID   int
	AthleteName string
}

// Intent is the processor's authorization response. ID is the processor's own
// payment reference and later becomes the donation's idempotency key.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

type intentPayload struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata"`
}

func (c *Client) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	payload := intentPayload{
		Amount:   req.AmountCents,
		Currency: "usd",
		Metadata: map[string]string{
			"athlete_id":   strconv.Itoa(req.AthleteID),
			"athlete_name": req.AthleteName,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode intent payload: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Bearer "+c.apiKey)
	headers.Set("Idempotency-Key", uuid.NewString())

	statusCode, respBody, _, err := c.client.Post(c.url+"/v1/payment_intents", headers, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("payment intent request failed: %w", err)
	}
	if statusCode != http.StatusOK {
		zap.L().Error("unexpected status from payment processor", zap.Int("status", statusCode))
		return nil, fmt.Errorf("unexpected status from payment processor: %d", statusCode)
	}

	var intent Intent
	if err := json.Unmarshal(respBody, &intent); err != nil {
		return nil, fmt.Errorf("failed to parse intent response: %w", err)
	}
	if intent.ID == "" {
		return nil, fmt.Errorf("payment processor returned empty intent id")
	}
	return &intent, nil
}
