package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/GlebRadaev/bikeathon/internal/dto"
	"github.com/GlebRadaev/bikeathon/internal/payment"
	donationservice "github.com/GlebRadaev/bikeathon/internal/service/donationservice"
	"github.com/GlebRadaev/bikeathon/pkg/currency"
	"github.com/GlebRadaev/bikeathon/pkg/utils"
	"go.uber.org/zap"
)

const signatureHeader = "Payment-Signature"

type Service interface {
	CreateIntent(ctx context.Context, athleteID int, amountCents int64) (*payment.Intent, error)
	ProcessEvent(ctx context.Context, event *payment.Event) error
}

type PaymentHandler struct {
	paymentService Service
	webhookSecret  string
}

func New(paymentService Service, webhookSecret string) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		webhookSecret:  webhookSecret,
	}
}

// CreateIntent godoc
//
//	@Summary		Authorize a donation payment
//	@Description	Validate the donation and create a payment intent with the external processor. The returned client secret completes the payment on the donor's side.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePaymentIntentRequestDTO	true	"Donation amount in major units and target athlete"
//	@Success		200		{object}	dto.CreatePaymentIntentResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed or out-of-range amount"
//	@Failure		404		{object}	utils.Response	"Athlete not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments [post]
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentIntentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amountCents, err := currency.ParseMajor(req.Amount.String())
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Amount must be a valid decimal number")
		return
	}
	if amountCents <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Amount must be greater than 0")
		return
	}

	intent, err := h.paymentService.CreateIntent(r.Context(), req.AthleteID, amountCents)
	if err != nil {
		switch {
		case errors.Is(err, donationservice.ErrAmountOutOfRange):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, donationservice.ErrAthleteNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CreatePaymentIntentResponseDTO{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	})
}

// Webhook godoc
//
//	@Summary		Payment notification intake
//	@Description	Receive signed payment events from the external processor. Delivery is at-least-once; events are acknowledged even when processing fails so the processor does not retry forever.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	dto.WebhookResponseDTO
//	@Failure		400	{object}	utils.Response	"Missing or invalid signature"
//	@Router			/api/webhooks/payment [post]
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	signature := r.Header.Get(signatureHeader)
	if err := payment.VerifySignature(body, signature, h.webhookSecret, time.Now()); err != nil {
		zap.L().Warn("webhook signature verification failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid signature")
		return
	}

	// Past this point the request is authentic; always acknowledge so the
	// processor stops redelivering. Failures are logged for manual replay.
	event, err := payment.ParseEvent(body)
	if err != nil {
		zap.L().Error("failed to parse webhook event", zap.Error(err))
		utils.RespondWithJSON(w, http.StatusOK, dto.WebhookResponseDTO{Received: true})
		return
	}

	if err := h.paymentService.ProcessEvent(r.Context(), event); err != nil {
		zap.L().Error("webhook processing error",
			zap.String("eventID", event.ID),
			zap.String("type", event.Type),
			zap.Error(err))
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.WebhookResponseDTO{Received: true})
}
