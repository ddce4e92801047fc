package api

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmaduty/config"
	apimiddleware "pharmaduty/internal/delivery/api/middleware"
	"pharmaduty/internal/delivery/api/router"
	"pharmaduty/internal/delivery/api/router/handler"
	deliverycontext "pharmaduty/internal/delivery/context"
	"pharmaduty/internal/domain/discovery"
	"pharmaduty/internal/domain/service"
	"pharmaduty/internal/infra/metrics"
	mockService "pharmaduty/internal/mocks/service"
	mockUsecase "pharmaduty/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	discovery *mockUsecase.MockDiscoveryUsecase
	pharmacy  *mockUsecase.MockPharmacyUsecase
	duty      *mockUsecase.MockDutyUsecase
	rating    *mockUsecase.MockRatingUsecase
	feedback  *mockUsecase.MockFeedbackUsecase
	tokens    *mockService.MockTokenService
	echo      *echo.Echo
}

func createTestServer(t *testing.T) serverFixtures {
	t.Helper()

	f := serverFixtures{
		discovery: mockUsecase.NewMockDiscoveryUsecase(t),
		pharmacy:  mockUsecase.NewMockPharmacyUsecase(t),
		duty:      mockUsecase.NewMockDutyUsecase(t),
		rating:    mockUsecase.NewMockRatingUsecase(t),
		feedback:  mockUsecase.NewMockFeedbackUsecase(t),
		tokens:    mockService.NewMockTokenService(t),
	}

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.DiscardHandler)

	f.echo = newEcho(cfg, logger, router.RouterParams{
		PharmacyHandler: handler.NewPharmacyHandler(handler.PharmacyHandlerParams{
			DiscoveryUC: f.discovery,
			PharmacyUC:  f.pharmacy,
			DutyUC:      f.duty,
			Logger:      logger,
		}),
		DutyHandler:     handler.NewDutyHandler(handler.DutyHandlerParams{DutyUC: f.duty}),
		RatingHandler:   handler.NewRatingHandler(handler.RatingHandlerParams{RatingUC: f.rating}),
		FeedbackHandler: handler.NewFeedbackHandler(handler.FeedbackHandlerParams{FeedbackUC: f.feedback}),
		AdminHandler: handler.NewAdminHandler(handler.AdminHandlerParams{
			PharmacyUC: f.pharmacy,
			RatingUC:   f.rating,
			FeedbackUC: f.feedback,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(f.tokens),
		Metrics:        metrics.New(prometheus.NewRegistry()),
	})

	return f
}

func (f serverFixtures) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_PublicRoutes(t *testing.T) {
	t.Parallel()

	f := createTestServer(t)
	f.discovery.EXPECT().Search(mock.Anything, mock.Anything).Return(&discovery.Result{}, nil)

	rec := f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec = f.do(http.MethodGet, "/api/v1/pharmacies", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `pharmaduty_http_requests_total{method="GET",route="/api/v1/pharmacies",status="200"} 1`)
}

func TestServer_Authorization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		target     string
		roles      []string
		wantStatus int
	}{
		{name: "register needs a token", method: http.MethodPost, target: "/api/v1/pharmacies", wantStatus: http.StatusUnauthorized},
		{name: "cancel needs a token", method: http.MethodDelete, target: "/api/v1/duty-periods/" + uuid.NewString(), wantStatus: http.StatusUnauthorized},
		{name: "admin needs a token", method: http.MethodGet, target: "/api/v1/admin/pharmacies", wantStatus: http.StatusUnauthorized},
		{name: "visitor role cannot schedule", method: http.MethodPost, target: "/api/v1/duty-periods", roles: []string{"visitor"}, wantStatus: http.StatusForbidden},
		{name: "pharmacist cannot moderate", method: http.MethodGet, target: "/api/v1/admin/feedbacks", roles: []string{"pharmacist"}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := createTestServer(t)
			token := ""
			if tt.roles != nil {
				token = "signed"
				f.tokens.EXPECT().ValidateToken(token).Return(&service.Claims{UserID: uuid.New(), Roles: tt.roles}, nil)
			}

			rec := f.do(tt.method, tt.target, token)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestServer_UnknownRoute(t *testing.T) {
	t.Parallel()

	f := createTestServer(t)

	rec := f.do(http.MethodGet, "/api/v1/unknown", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}
