package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/furniture-crm/internal/handlers/admin"
	"github.com/GlebRadaev/furniture-crm/internal/handlers/analytics"
	authhandlers "github.com/GlebRadaev/furniture-crm/internal/handlers/auth"
	"github.com/GlebRadaev/furniture-crm/internal/handlers/files"
	"github.com/GlebRadaev/furniture-crm/internal/handlers/orders"
	"github.com/GlebRadaev/furniture-crm/internal/handlers/payments"
	"github.com/GlebRadaev/furniture-crm/internal/service"
	"github.com/GlebRadaev/furniture-crm/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		AuthService:      authhandlers.NewMockService(ctrl),
		OrderService:     orders.NewMockService(ctrl),
		PaymentService:   payments.NewMockService(ctrl),
		FileService:      files.NewMockService(ctrl),
		AnalyticsService: analytics.NewMockService(ctrl),
		ReconcileService: admin.NewMockReconcileService(ctrl),
	}

	policy, err := auth.NewPolicy()
	require.NoError(t, err)

	h := New(services, auth.NewJWTService("secret"), policy, t.TempDir())
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.Static)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockFileHandler := NewMockFileHandler(ctrl)
	mockAnalyticsHandler := NewMockAnalyticsHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().GetOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().ListOrders(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().ListUsers(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().ExportOrders(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().ListPayments(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().DeletePayment(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().Reconcile(gomock.Any(), gomock.Any()).AnyTimes()
	mockFileHandler.EXPECT().UploadFile(gomock.Any(), gomock.Any()).AnyTimes()
	mockFileHandler.EXPECT().ListFiles(gomock.Any(), gomock.Any()).AnyTimes()
	mockAnalyticsHandler.EXPECT().GetAnalytics(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().ReconcileAll(gomock.Any(), gomock.Any()).AnyTimes()

	filesDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(filesDir, "1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(filesDir, "1", "plan.png"), []byte("png"), 0o644))

	tokens := auth.NewJWTService("secret")
	policy, err := auth.NewPolicy()
	require.NoError(t, err)

	h := &Handlers{
		AuthHandler:      mockAuthHandler,
		OrderHandler:     mockOrderHandler,
		PaymentHandler:   mockPaymentHandler,
		FileHandler:      mockFileHandler,
		AnalyticsHandler: mockAnalyticsHandler,
		AdminHandler:     mockAdminHandler,
		Tokens:           tokens,
		Authorizer:       policy,
		Static:           http.StripPrefix("/files/", http.FileServer(http.Dir(filesDir))),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	exp := time.Now().Add(time.Hour)
	designer, err := tokens.GenerateJWT(auth.RoleDesigner, exp)
	require.NoError(t, err)
	admin, err := tokens.GenerateJWT(auth.RoleAdmin, exp)
	require.NoError(t, err)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/login", "", http.StatusOK},
		{"GET", "/api/orders", "", http.StatusUnauthorized},
		{"GET", "/api/orders", "not-a-jwt", http.StatusUnauthorized},
		{"GET", "/api/orders", designer, http.StatusOK},
		{"POST", "/api/orders", designer, http.StatusOK},
		{"GET", "/api/orders/export", designer, http.StatusOK},
		{"GET", "/api/orders/1", designer, http.StatusOK},
		{"PUT", "/api/orders/1", designer, http.StatusOK},
		{"GET", "/api/users", designer, http.StatusOK},
		{"GET", "/api/orders/1/payments", designer, http.StatusOK},
		{"POST", "/api/orders/1/payments", designer, http.StatusOK},
		{"DELETE", "/api/orders/1/payments/2", designer, http.StatusOK},
		{"POST", "/api/orders/1/reconcile", designer, http.StatusOK},
		{"GET", "/api/orders/1/files", designer, http.StatusOK},
		{"POST", "/api/orders/1/files", designer, http.StatusOK},
		{"GET", "/api/analytics", designer, http.StatusForbidden},
		{"POST", "/api/admin/reconcile", designer, http.StatusForbidden},
		{"GET", "/api/analytics", admin, http.StatusOK},
		{"POST", "/api/admin/reconcile", admin, http.StatusOK},
		{"POST", "/api/orders/1/payments", admin, http.StatusOK},
		{"GET", "/files/1/plan.png", "", http.StatusOK},
		{"GET", "/files/1/missing.png", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
