package analytics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
)

func TestGetAnalyticsHandler(t *testing.T) {
	tests := []struct {
		name         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "Summary",
			prepareMock: func(service *MockService) {
				service.EXPECT().Summary(gomock.Any()).Return(&domain.Analytics{
					OrdersCount: 2,
					Turnover:    decimal.RequireFromString("1500"),
					Cash:        decimal.RequireFromString("600.5"),
					Debt:        decimal.RequireFromString("899.5"),
					ByStatus: []domain.StatusCount{
						{Status: domain.StatusLead, Count: 1},
						{Status: domain.StatusCompleted, Count: 1},
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"orders_count":2,"turnover":"1500.00","cash":"600.50","debt":"899.50",
				"by_status":[{"status":"Lead","count":1},{"status":"Completed","count":1}]}`,
		},
		{
			name: "Storage unavailable",
			prepareMock: func(service *MockService) {
				service.EXPECT().Summary(gomock.Any()).Return(nil, domain.ErrStorageUnavailable)
			},
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: `{"message":"storage unavailable"}`,
		},
		{
			name: "Unexpected error",
			prepareMock: func(service *MockService) {
				service.EXPECT().Summary(gomock.Any()).Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := NewMockService(ctrl)
			handler := New(service)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodGet, "/api/analytics", nil)
			w := httptest.NewRecorder()
			handler.GetAnalytics(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
