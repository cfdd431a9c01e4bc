package payments

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bikeathon/internal/dto"
	"github.com/GlebRadaev/bikeathon/internal/payment"
	donationservice "github.com/GlebRadaev/bikeathon/internal/service/donationservice"
)

const testSecret = "whsec_test"

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, testSecret)
	defer ctrl.Finish()
	return handler, service
}

func TestCreateIntentHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.CreatePaymentIntentResponseDTO
	}{
		{
			name: "Successful intent creation",
			body: `{"amount":50,"athleteId":1}`,
			prepareMock: func() {
				service.EXPECT().
					CreateIntent(gomock.Any(), 1, int64(5000)).
					Return(&payment.Intent{ID: "pi_abc123", ClientSecret: "pi_abc123_secret"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.CreatePaymentIntentResponseDTO{
				ClientSecret:    "pi_abc123_secret",
				PaymentIntentID: "pi_abc123",
			},
		},
		{
			name: "Fractional amount keeps cents exact",
			body: `{"amount":50.25,"athleteId":1}`,
			prepareMock: func() {
				service.EXPECT().
					CreateIntent(gomock.Any(), 1, int64(5025)).
					Return(&payment.Intent{ID: "pi_abc124", ClientSecret: "pi_abc124_secret"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.CreatePaymentIntentResponseDTO{
				ClientSecret:    "pi_abc124_secret",
				PaymentIntentID: "pi_abc124",
			},
		},
		{
			name:         "Invalid request body",
			body:         `{"amount":invalid}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Non-numeric amount",
			body:         `{"amount":"fifty","athleteId":1}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Zero amount",
			body:         `{"amount":0,"athleteId":1}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Negative amount",
			body:         `{"amount":-5,"athleteId":1}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Amount out of range",
			body: `{"amount":0.50,"athleteId":1}`,
			prepareMock: func() {
				service.EXPECT().
					CreateIntent(gomock.Any(), 1, int64(50)).
					Return(nil, donationservice.ErrAmountOutOfRange)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Athlete not found",
			body: `{"amount":50,"athleteId":42}`,
			prepareMock: func() {
				service.EXPECT().
					CreateIntent(gomock.Any(), 42, int64(5000)).
					Return(nil, donationservice.ErrAthleteNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			body: `{"amount":50,"athleteId":1}`,
			prepareMock: func() {
				service.EXPECT().
					CreateIntent(gomock.Any(), 1, int64(5000)).
					Return(nil, errors.New("processor unavailable"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := httptest.NewRequest(http.MethodPost, "/api/payments", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.CreateIntent(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.CreatePaymentIntentResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestWebhookHandler(t *testing.T) {
	handler, service := NewMock(t)

	eventBody := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_abc123","amount":5000,"currency":"usd","status":"succeeded","metadata":{"athlete_id":"1","athlete_name":"Jane Doe"}}}}`)

	tests := []struct {
		name         string
		body         []byte
		signature    func() string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:      "Valid signature is processed and acknowledged",
			body:      eventBody,
			signature: func() string { return payment.Sign(eventBody, testSecret, time.Now()) },
			prepareMock: func() {
				service.EXPECT().ProcessEvent(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing signature rejected before any processing",
			body:         eventBody,
			signature:    func() string { return "" },
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Wrong secret rejected before any processing",
			body:         eventBody,
			signature:    func() string { return payment.Sign(eventBody, "whsec_other", time.Now()) },
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Stale timestamp rejected",
			body:         eventBody,
			signature:    func() string { return payment.Sign(eventBody, testSecret, time.Now().Add(-10*time.Minute)) },
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Unparseable authentic payload still acknowledged",
			body:         []byte(`not json`),
			signature:    func() string { return payment.Sign([]byte(`not json`), testSecret, time.Now()) },
			expectedCode: http.StatusOK,
		},
		{
			name:      "Processing failure still acknowledged",
			body:      eventBody,
			signature: func() string { return payment.Sign(eventBody, testSecret, time.Now()) },
			prepareMock: func() {
				service.EXPECT().ProcessEvent(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := httptest.NewRequest(http.MethodPost, "/api/webhooks/payment", bytes.NewBuffer(tt.body))
			if sig := tt.signature(); sig != "" {
				r.Header.Set("Payment-Signature", sig)
			}
			w := httptest.NewRecorder()
			handler.Webhook(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var body dto.WebhookResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.True(t, body.Received)
			}
		})
	}
}
