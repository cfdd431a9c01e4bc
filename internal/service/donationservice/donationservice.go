package donationservice

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/bikeathon/internal/domain"
	"github.com/GlebRadaev/bikeathon/internal/payment"
	"github.com/GlebRadaev/bikeathon/internal/pg"
	"github.com/GlebRadaev/bikeathon/pkg/validate"
	"go.uber.org/zap"
)

type DonationRepo interface {
	FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*domain.Donation, error)
	Save(ctx context.Context, donation *domain.Donation) error
}

type AthleteRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Athlete, error)
	IncrementTotalRaised(ctx context.Context, athleteID int, amountCents int64) (int, error)
}

type TeamRepo interface {
	IncrementTotalRaised(ctx context.Context, teamID int, amountCents int64) (bool, error)
}

type PaymentClient interface {
	CreateIntent(ctx context.Context, req payment.IntentRequest) (*payment.Intent, error)
}

type Service struct {
	donationRepo DonationRepo
	athleteRepo  AthleteRepo
	teamRepo     TeamRepo
	client       PaymentClient
	txManager    pg.TXManager
}

func New(donationRepo DonationRepo, athleteRepo AthleteRepo, teamRepo TeamRepo, client PaymentClient, txManager pg.TXManager) *Service {
	return &Service{
		donationRepo: donationRepo,
		athleteRepo:  athleteRepo,
		teamRepo:     teamRepo,
		client:       client,
		txManager:    txManager,
	}
}

var (
	ErrAthleteNotFound       = errors.New("athlete not found")
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrAmountOutOfRange      = errors.New("amount is out of the accepted range")
	ErrEmptyPaymentReference = errors.New("payment reference is required")

	// errDuplicateReference aborts the transaction when a concurrent delivery
	// of the same notification wins the insert race.
	errDuplicateReference = errors.New("duplicate payment reference")
)

// CreateIntent validates the donation request and authorizes a charge with
// the external processor. The returned intent id is the processor's own and
// later arrives back in the webhook as the idempotency key.
func (s *Service) CreateIntent(ctx context.Context, athleteID int, amountCents int64) (*payment.Intent, error) {
	if !validate.IsAmountInRange(amountCents) {
		return nil, ErrAmountOutOfRange
	}

	athlete, err := s.athleteRepo.FindByID(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	if athlete == nil {
		return nil, ErrAthleteNotFound
	}

	intent, err := s.client.CreateIntent(ctx, payment.IntentRequest{
		AmountCents: amountCents,
		AthleteID:   athlete.ID,
		AthleteName: athlete.Name,
	})
	if err != nil {
		zap.L().Error("can't create payment intent", zap.Int("athleteID", athleteID), zap.Error(err))
		return nil, err
	}
	return intent, nil
}

// ApplyDonation records a confirmed payment exactly once. Inside a single
// transaction it inserts the donation row and pushes the amount into the
// athlete's and the team's running totals; a replay of the same payment
// reference returns the already-recorded donation with no further writes.
func (s *Service) ApplyDonation(ctx context.Context, athleteID int, amountCents int64, paymentIntentID string) (*domain.Donation, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if paymentIntentID == "" {
		return nil, ErrEmptyPaymentReference
	}

	var donation *domain.Donation
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.donationRepo.FindByPaymentIntentID(ctx, paymentIntentID)
		if err != nil {
			return err
		}
		if existing != nil {
			zap.L().Info("donation already processed", zap.String("paymentIntentID", paymentIntentID))
			donation = existing
			return nil
		}

		created := &domain.Donation{
			AmountCents:     amountCents,
			AthleteID:       athleteID,
			PaymentIntentID: paymentIntentID,
		}
		if err := s.donationRepo.Save(ctx, created); err != nil {
			if pg.IsUniqueViolation(err) {
				return errDuplicateReference
			}
			return err
		}

		teamID, err := s.athleteRepo.IncrementTotalRaised(ctx, athleteID, amountCents)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrAthleteNotFound
			}
			return err
		}

		updated, err := s.teamRepo.IncrementTotalRaised(ctx, teamID, amountCents)
		if err != nil {
			return err
		}
		if !updated {
			// Detached athlete: the donation still counts for the athlete,
			// but there is no team total to push it into.
			zap.L().Warn("athlete has no resolvable team, skipping team total",
				zap.Int("athleteID", athleteID), zap.Int("teamID", teamID))
		}

		donation = created
		return nil
	})
	if errors.Is(err, errDuplicateReference) {
		// Lost the insert race to a concurrent delivery of the same
		// notification; the transaction rolled back, so read the winner's row.
		zap.L().Info("donation already processed concurrently", zap.String("paymentIntentID", paymentIntentID))
		return s.donationRepo.FindByPaymentIntentID(ctx, paymentIntentID)
	}
	if err != nil {
		return nil, err
	}
	return donation, nil
}

// ProcessEvent applies a verified webhook event to the ledger. Events the
// service does not understand are acknowledged without error so the processor
// stops redelivering them.
func (s *Service) ProcessEvent(ctx context.Context, event *payment.Event) error {
	if event.Type != payment.EventPaymentSucceeded {
		zap.L().Info("ignoring webhook event", zap.String("eventID", event.ID), zap.String("type", event.Type))
		return nil
	}

	intent := event.Data.Object
	athleteID, err := strconv.Atoi(intent.Metadata.AthleteID)
	if err != nil {
		zap.L().Warn("webhook event has malformed athlete metadata",
			zap.String("eventID", event.ID), zap.String("athleteID", intent.Metadata.AthleteID))
		return nil
	}

	donation, err := s.ApplyDonation(ctx, athleteID, intent.Amount, intent.ID)
	if err != nil {
		return err
	}

	zap.L().Info("donation processed",
		zap.Int("donationID", donation.ID),
		zap.Int64("amountCents", donation.AmountCents),
		zap.String("athleteName", intent.Metadata.AthleteName),
		zap.Int("athleteID", athleteID))
	return nil
}
