package payment

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/bikeathon/internal/config"
)

type stubHTTPClient struct {
	statusCode int
	respBody   []byte
	err        error

	gotURL     string
	gotHeaders http.Header
	gotBody    []byte
}

func (s *stubHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, errors.New("not used")
}

func (s *stubHTTPClient) Post(url string, headers http.Header, body io.Reader) (int, []byte, http.Header, error) {
	s.gotURL = url
	s.gotHeaders = headers
	s.gotBody, _ = io.ReadAll(body)
	return s.statusCode, s.respBody, nil, s.err
}

func TestCreateIntent(t *testing.T) {
	cfg := &config.Config{
		PaymentAddress: "https://api.payment.test",
		PaymentKey:     "sk_test",
	}

	tests := []struct {
		name           string
		stub           *stubHTTPClient
		expectedIntent *Intent
		expectErr      bool
	}{
		{
			name: "Successful authorization",
			stub: &stubHTTPClient{
				statusCode: http.StatusOK,
				respBody:   []byte(`{"id":"pi_abc123","client_secret":"pi_abc123_secret"}`),
			},
			expectedIntent: &Intent{ID: "pi_abc123", ClientSecret: "pi_abc123_secret"},
		},
		{
			name: "Non-200 status",
			stub: &stubHTTPClient{
				statusCode: http.StatusBadGateway,
				respBody:   []byte(`{}`),
			},
			expectErr: true,
		},
		{
			name: "Transport error",
			stub: &stubHTTPClient{
				err: errors.New("connection refused"),
			},
			expectErr: true,
		},
		{
			name: "Empty intent id",
			stub: &stubHTTPClient{
				statusCode: http.StatusOK,
				respBody:   []byte(`{"id":"","client_secret":"secret"}`),
			},
			expectErr: true,
		},
		{
			name: "Unparseable response",
			stub: &stubHTTPClient{
				statusCode: http.StatusOK,
				respBody:   []byte(`not json`),
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(cfg, tt.stub)
			intent, err := client.CreateIntent(context.Background(), IntentRequest{
				AmountCents: 5000,
				AthleteID:   1,
				AthleteName: "Jane Doe",
			})

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedIntent, intent)

			assert.Equal(t, "https://api.payment.test/v1/payment_intents", tt.stub.gotURL)
			assert.Equal(t, "Bearer sk_test", tt.stub.gotHeaders.Get("Authorization"))
			assert.NotEmpty(t, tt.stub.gotHeaders.Get("Idempotency-Key"))
			assert.JSONEq(t, `{"amount":5000,"currency":"usd","metadata":{"athlete_id":"1","athlete_name":"Jane Doe"}}`, string(tt.stub.gotBody))
		})
	}
}
