package donationservice

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bikeathon/internal/domain"
	"github.com/GlebRadaev/bikeathon/internal/payment"
	"github.com/GlebRadaev/bikeathon/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockDonationRepo, *MockAthleteRepo, *MockTeamRepo, *MockPaymentClient, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	donationRepo := NewMockDonationRepo(ctrl)
	athleteRepo := NewMockAthleteRepo(ctrl)
	teamRepo := NewMockTeamRepo(ctrl)
	client := NewMockPaymentClient(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(donationRepo, athleteRepo, teamRepo, client, txManager)
	defer ctrl.Finish()
	return service, donationRepo, athleteRepo, teamRepo, client, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	})
}

func TestCreateIntent(t *testing.T) {
	service, _, athleteRepo, _, client, _ := NewMock(t)
	tests := []struct {
		name           string
		athleteID      int
		amountCents    int64
		prepareMock    func()
		expectedIntent *payment.Intent
		expectedError  error
	}{
		{
			name:        "Intent created successfully",
			athleteID:   1,
			amountCents: 5000,
			prepareMock: func() {
				athleteRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Athlete{ID: 1, Name: "Jane Doe"}, nil)
				client.EXPECT().CreateIntent(gomock.Any(), payment.IntentRequest{
					AmountCents: 5000,
					AthleteID:   1,
					AthleteName: "Jane Doe",
				}).Return(&payment.Intent{ID: "pi_abc123", ClientSecret: "pi_abc123_secret"}, nil)
			},
			expectedIntent: &payment.Intent{ID: "pi_abc123", ClientSecret: "pi_abc123_secret"},
			expectedError:  nil,
		},
		{
			name:          "Amount below minimum",
			athleteID:     1,
			amountCents:   99,
			expectedError: ErrAmountOutOfRange,
		},
		{
			name:          "Amount above maximum",
			athleteID:     1,
			amountCents:   100_000_000,
			expectedError: ErrAmountOutOfRange,
		},
		{
			name:        "Athlete not found",
			athleteID:   42,
			amountCents: 5000,
			prepareMock: func() {
				athleteRepo.EXPECT().FindByID(gomock.Any(), 42).Return(nil, nil)
			},
			expectedError: ErrAthleteNotFound,
		},
		{
			name:        "Processor rejects the charge",
			athleteID:   1,
			amountCents: 5000,
			prepareMock: func() {
				athleteRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Athlete{ID: 1, Name: "Jane Doe"}, nil)
				client.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).Return(nil, errors.New("processor unavailable"))
			},
			expectedError: errors.New("processor unavailable"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			intent, err := service.CreateIntent(context.Background(), tt.athleteID, tt.amountCents)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedIntent, intent)
			}
		})
	}
}

func TestApplyDonation(t *testing.T) {
	service, donationRepo, athleteRepo, teamRepo, _, txManager := NewMock(t)

	uniqueViolation := &pgconn.PgError{Code: "23505", ConstraintName: "donations_payment_intent_id_key"}

	tests := []struct {
		name             string
		athleteID        int
		amountCents      int64
		paymentIntentID  string
		prepareMock      func()
		expectedDonation *domain.Donation
		expectedError    error
	}{
		{
			name:            "Donation applied to athlete and team",
			athleteID:       1,
			amountCents:     5000,
			paymentIntentID: "pi_abc123",
			prepareMock: func() {
				passthroughTx(txManager)
				donationRepo.EXPECT().FindByPaymentIntentID(gomock.Any(), "pi_abc123").Return(nil, nil)
				donationRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, d *domain.Donation) error {
					d.ID = 10
					return nil
				})
				athleteRepo.EXPECT().IncrementTotalRaised(gomock.Any(), 1, int64(5000)).Return(3, nil)
				teamRepo.EXPECT().IncrementTotalRaised(gomock.Any(), 3, int64(5000)).Return(true, nil)
			},
			expectedDonation: &domain.Donation{ID: 10, AmountCents: 5000, AthleteID: 1, PaymentIntentID: "pi_abc123"},
			expectedError:    nil,
		},
		{
			name:            "Replay of a processed payment returns the recorded donation",
			athleteID:       1,
			amountCents:     5000,
			paymentIntentID: "pi_abc123",
			prepareMock: func() {
				passthroughTx(txManager)
				donationRepo.EXPECT().FindByPaymentIntentID(gomock.Any(), "pi_abc123").Return(&domain.Donation{
					ID: 10, AmountCents: 5000, AthleteID: 1, PaymentIntentID: "pi_abc123",
				}, nil)
			},
			expectedDonation: &domain.Donation{ID: 10, AmountCents: 5000, AthleteID: 1, PaymentIntentID: "pi_abc123"},
			expectedError:    nil,
		},
		{
			name:            "Concurrent delivery loses the insert race",
			athleteID:       1,
			amountCents:     5000,
			paymentIntentID: "pi_abc123",
			prepareMock: func() {
				passthroughTx(txManager)
				donationRepo.EXPECT().FindByPaymentIntentID(gomock.Any(), "pi_abc123").Return(nil, nil)
				donationRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(uniqueViolation)
				donationRepo.EXPECT().FindByPaymentIntentID(gomock.Any(), "pi_abc123").Return(&domain.Donation{
					ID: 11, AmountCents: 5000, AthleteID: 1, PaymentIntentID: "pi_abc123",
				}, nil)
			},
			expectedDonation: &domain.Donation{ID: 11, AmountCents: 5000, AthleteID: 1, PaymentIntentID: "pi_abc123"},
			expectedError:    nil,
		},
		{
			name:            "Athlete missing rolls the transaction back",
			athleteID:       42,
			amountCents:     5000,
			paymentIntentID: "pi_abc123",
			prepareMock: func() {
				passthroughTx(txManager)
				donationRepo.EXPECT().FindByPaymentIntentID(gomock.Any(), "pi_abc123").Return(nil, nil)
				donationRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				athleteRepo.EXPECT().IncrementTotalRaised(gomock.Any(), 42, int64(5000)).Return(0, pgx.ErrNoRows)
			},
			expectedError: ErrAthleteNotFound,
		},
		{
			name:            "Detached athlete still counts for the athlete",
			athleteID:       1,
			amountCents:     5000,
			paymentIntentID: "pi_abc123",
			prepareMock: func() {
				passthroughTx(txManager)
				donationRepo.EXPECT().FindByPaymentIntentID(gomock.Any(), "pi_abc123").Return(nil, nil)
				donationRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				athleteRepo.EXPECT().IncrementTotalRaised(gomock.Any(), 1, int64(5000)).Return(99, nil)
				teamRepo.EXPECT().IncrementTotalRaised(gomock.Any(), 99, int64(5000)).Return(false, nil)
			},
			expectedDonation: &domain.Donation{AmountCents: 5000, AthleteID: 1, PaymentIntentID: "pi_abc123"},
			expectedError:    nil,
		},
		{
			name:            "Zero amount rejected",
			athleteID:       1,
			amountCents:     0,
			paymentIntentID: "pi_abc123",
			expectedError:   ErrInvalidAmount,
		},
		{
			name:            "Negative amount rejected",
			athleteID:       1,
			amountCents:     -5000,
			paymentIntentID: "pi_abc123",
			expectedError:   ErrInvalidAmount,
		},
		{
			name:          "Empty payment reference rejected",
			athleteID:     1,
			amountCents:   5000,
			expectedError: ErrEmptyPaymentReference,
		},
		{
			name:            "Team update failure rolls the transaction back",
			athleteID:       1,
			amountCents:     5000,
			paymentIntentID: "pi_abc123",
			prepareMock: func() {
				passthroughTx(txManager)
				donationRepo.EXPECT().FindByPaymentIntentID(gomock.Any(), "pi_abc123").Return(nil, nil)
				donationRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				athleteRepo.EXPECT().IncrementTotalRaised(gomock.Any(), 1, int64(5000)).Return(3, nil)
				teamRepo.EXPECT().IncrementTotalRaised(gomock.Any(), 3, int64(5000)).Return(false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			donation, err := service.ApplyDonation(context.Background(), tt.athleteID, tt.amountCents, tt.paymentIntentID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedDonation, donation)
			}
		})
	}
}

func TestProcessEvent(t *testing.T) {
	service, donationRepo, athleteRepo, teamRepo, _, txManager := NewMock(t)

	succeeded := func(intentID, athleteID string, amount int64) *payment.Event {
		event := &payment.Event{ID: "evt_1", Type: payment.EventPaymentSucceeded}
		event.Data.Object = payment.PaymentIntent{
			ID:       intentID,
			Amount:   amount,
			Currency: "usd",
			Status:   "succeeded",
		}
		event.Data.Object.Metadata.AthleteID = athleteID
		event.Data.Object.Metadata.AthleteName = "Jane Doe"
		return event
	}

	tests := []struct {
		name          string
		event         *payment.Event
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Succeeded event is applied",
			event: succeeded("pi_abc123", "1", 5000),
			prepareMock: func() {
				passthroughTx(txManager)
				donationRepo.EXPECT().FindByPaymentIntentID(gomock.Any(), "pi_abc123").Return(nil, nil)
				donationRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				athleteRepo.EXPECT().IncrementTotalRaised(gomock.Any(), 1, int64(5000)).Return(3, nil)
				teamRepo.EXPECT().IncrementTotalRaised(gomock.Any(), 3, int64(5000)).Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name:          "Unhandled event type is acknowledged",
			event:         &payment.Event{ID: "evt_2", Type: "payment_intent.created"},
			expectedError: nil,
		},
		{
			name:          "Malformed athlete metadata is acknowledged",
			event:         succeeded("pi_abc123", "not-a-number", 5000),
			expectedError: nil,
		},
		{
			name:  "Processing failure propagates",
			event: succeeded("pi_abc123", "1", 5000),
			prepareMock: func() {
				passthroughTx(txManager)
				donationRepo.EXPECT().FindByPaymentIntentID(gomock.Any(), "pi_abc123").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.ProcessEvent(context.Background(), tt.event)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
