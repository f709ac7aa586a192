package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nexttoyou/config"
	apimiddleware "nexttoyou/internal/delivery/api/middleware"
	"nexttoyou/internal/delivery/api/router"
	"nexttoyou/internal/delivery/api/router/handler"
	"nexttoyou/internal/domain/entity"
	"nexttoyou/internal/domain/service"
	mockservice "nexttoyou/internal/mocks/service"
	mockusecase "nexttoyou/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type testServer struct {
	echo      *echo.Echo
	tokens    *mockservice.MockTokenService
	proximity *mockusecase.MockProximityUsecase
	profile   *mockusecase.MockProfileUsecase
}

func newTestServer(t *testing.T, burst int) *testServer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.RateLimit = &config.RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: 0.001,
		Burst:             burst,
		ExpiresIn:         time.Minute,
	}

	ts := &testServer{
		tokens:    mockservice.NewMockTokenService(t),
		proximity: mockusecase.NewMockProximityUsecase(t),
		profile:   mockusecase.NewMockProfileUsecase(t),
	}

	srv, err := NewServer(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			ProximityHandler: handler.NewProximityHandler(handler.ProximityHandlerParams{ProximityUC: ts.proximity, Logger: logger}),
			TrackingHandler:  handler.NewTrackingHandler(handler.TrackingHandlerParams{TrackingUC: mockusecase.NewMockTrackingUsecase(t), Logger: logger}),
			SettingsHandler:  handler.NewSettingsHandler(handler.SettingsHandlerParams{ProfileUC: ts.profile, Logger: logger}),
			DeviceHandler:    handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockusecase.NewMockDeviceUsecase(t), Logger: logger}),
			NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{
				NotificationUC: mockusecase.NewMockNotificationUsecase(t),
				Logger:         logger,
			}),
			AuthMiddleware:      apimiddleware.NewAuthMiddleware(ts.tokens, logger),
			RateLimitMiddleware: apimiddleware.NewRateLimitMiddleware(cfg),
		},
	})
	require.NoError(t, err)
	ts.echo = srv.(*apiServer).server

	return ts
}

func (ts *testServer) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t, 1)

	rec := ts.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestServer_Authentication(t *testing.T) {
	userID := uuid.New()

	t.Run("missing header", func(t *testing.T) {
		ts := newTestServer(t, 1)

		rec := ts.do(http.MethodGet, "/api/v1/settings", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
	})

	t.Run("rejected token", func(t *testing.T) {
		ts := newTestServer(t, 1)
		ts.tokens.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("token is expired")).Once()

		rec := ts.do(http.MethodGet, "/api/v1/settings", "bad")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	})

	t.Run("valid token reaches handler", func(t *testing.T) {
		ts := newTestServer(t, 1)
		ts.tokens.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID, Type: "access"}, nil).Once()
		ts.profile.EXPECT().GetProfile(mock.Anything, userID).Return(&entity.ProximityProfile{UserID: userID}, nil).Once()

		rec := ts.do(http.MethodGet, "/api/v1/settings", "good")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), userID.String())
	})
}

func TestServer_SearchRateLimit(t *testing.T) {
	userID := uuid.New()
	ts := newTestServer(t, 2)
	ts.tokens.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID, Type: "access"}, nil)
	ts.proximity.EXPECT().SearchByItemName(mock.Anything, 32.0, 34.0, "milk", float64(0)).Return(nil, nil).Times(2)

	for range 2 {
		rec := ts.do(http.MethodGet, "/api/v1/stores/search?lat=32&lon=34&item=milk", "good")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := ts.do(http.MethodGet, "/api/v1/stores/search?lat=32&lon=34&item=milk", "good")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOO_MANY_REQUESTS")
}

func TestServer_UnknownRoute(t *testing.T) {
	ts := newTestServer(t, 1)

	rec := ts.do(http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestServer_CORS(t *testing.T) {
	ts := newTestServer(t, 1)

	t.Run("preflight allows bearer and request id headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/tracking/positions", nil)
		req.Header.Set(echo.HeaderOrigin, "https://app.nexttoyou.example")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
		rec := httptest.NewRecorder()
		ts.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		allowed := rec.Header().Get(echo.HeaderAccessControlAllowHeaders)
		assert.Contains(t, allowed, echo.HeaderAuthorization)
		assert.Contains(t, allowed, "X-Request-Id")
		assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPut)
	})

	t.Run("request id is readable cross origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(echo.HeaderOrigin, "https://app.nexttoyou.example")
		rec := httptest.NewRecorder()
		ts.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "X-Request-Id", rec.Header().Get(echo.HeaderAccessControlExposeHeaders))
	})
}

func TestServer_OversizedPositionReportRejected(t *testing.T) {
	ts := newTestServer(t, 1)

	body := `{"lat":32.08,"lon":34.78,"pad":"` + strings.Repeat("x", 200*1024) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tracking/positions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}
