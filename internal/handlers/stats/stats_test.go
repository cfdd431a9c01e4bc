package stats

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bikeathon/internal/dto"
	statsservice "github.com/GlebRadaev/bikeathon/internal/service/statsservice"
)

func NewMock(t *testing.T) (*StatsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.StatsResponseDTO
	}{
		{
			name: "Stats rendered with formatted amounts",
			prepareMock: func() {
				service.EXPECT().GetStats(gomock.Any()).Return(&statsservice.Stats{
					TotalRaisedCents:     125000,
					TotalMiles:           1200,
					TotalDonations:       25,
					AthleteCount:         12,
					TeamCount:            3,
					AverageDonationCents: 5000,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.StatsResponseDTO{
				TotalRaised:     "1250.00",
				TotalMiles:      1200,
				TotalDonations:  25,
				AthleteCount:    12,
				TeamCount:       3,
				AverageDonation: "50.00",
			},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetStats(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
			w := httptest.NewRecorder()
			handler.Get(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.StatsResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
