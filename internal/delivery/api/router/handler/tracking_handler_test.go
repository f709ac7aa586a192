package handler

import (
	"net/http"
	"testing"
	"time"

	domainerrors "nexttoyou/internal/domain/errors"
	mockusecase "nexttoyou/internal/mocks/usecase"
	"nexttoyou/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTrackingHandler(t *testing.T) (*TrackingHandler, *mockusecase.MockTrackingUsecase) {
	uc := mockusecase.NewMockTrackingUsecase(t)

	return NewTrackingHandler(TrackingHandlerParams{TrackingUC: uc, Logger: newDiscardLogger()}), uc
}

func TestTrackingHandler_ReportPosition(t *testing.T) {
	t.Run("reports fix with timestamp", func(t *testing.T) {
		h, uc := newTrackingHandler(t)
		ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		uc.EXPECT().
			ReportPosition(mock.Anything, testUserID, usecase.Position{Latitude: 32.085, Longitude: 34.7818, Timestamp: ts}).
			Return(&usecase.TrackingResult{State: usecase.StateWatching, Checked: true, Alerts: []usecase.Alert{}}, nil).
			Once()

		body := `{"latitude":32.085,"longitude":34.7818,"timestamp":"2024-05-01T10:00:00Z"}`
		c, rec := newTestContext(http.MethodPost, "/api/v1/tracking/positions", body, testUserID)
		require.NoError(t, h.ReportPosition(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"state":"WATCHING","checked":true,"alerts":[]}`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("zero coordinates are accepted", func(t *testing.T) {
		h, uc := newTrackingHandler(t)
		uc.EXPECT().
			ReportPosition(mock.Anything, testUserID, usecase.Position{}).
			Return(&usecase.TrackingResult{State: usecase.StateSleeping, SkipReason: usecase.SkipReasonSleeping}, nil).
			Once()

		c, rec := newTestContext(http.MethodPost, "/api/v1/tracking/positions", `{"latitude":0,"longitude":0}`, testUserID)
		require.NoError(t, h.ReportPosition(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing longitude", func(t *testing.T) {
		h, _ := newTrackingHandler(t)

		c, rec := newTestContext(http.MethodPost, "/api/v1/tracking/positions", `{"latitude":32.1}`, testUserID)
		require.NoError(t, h.ReportPosition(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "longitude is required", env.Error.Details)
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := newTrackingHandler(t)

		c, rec := newTestContext(http.MethodPost, "/api/v1/tracking/positions", `{"latitude":`, testUserID)
		require.NoError(t, h.ReportPosition(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		h, uc := newTrackingHandler(t)
		uc.EXPECT().
			ReportPosition(mock.Anything, testUserID, mock.Anything).
			Return(nil, domainerrors.ErrUnknownUser).
			Once()

		c, rec := newTestContext(http.MethodPost, "/api/v1/tracking/positions", `{"latitude":1,"longitude":2}`, testUserID)
		require.NoError(t, h.ReportPosition(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "UNKNOWN_USER", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestTrackingHandler_SessionRoutes(t *testing.T) {
	t.Run("instant check", func(t *testing.T) {
		h, uc := newTrackingHandler(t)
		uc.EXPECT().
			InstantCheck(mock.Anything, testUserID).
			Return(&usecase.TrackingResult{State: usecase.StateStopped, SkipReason: usecase.SkipReasonNotTracking}, nil).
			Once()

		c, rec := newTestContext(http.MethodPost, "/api/v1/tracking/instant-check", "", testUserID)
		require.NoError(t, h.InstantCheck(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"skip_reason":"not_tracking"`)
	})

	t.Run("stop", func(t *testing.T) {
		h, uc := newTrackingHandler(t)
		uc.EXPECT().StopTracking(mock.Anything, testUserID).Return(nil).Once()

		c, rec := newTestContext(http.MethodPost, "/api/v1/tracking/stop", "", testUserID)
		require.NoError(t, h.StopTracking(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("logout", func(t *testing.T) {
		h, uc := newTrackingHandler(t)
		uc.EXPECT().Logout(mock.Anything, testUserID).Return(nil).Once()

		c, rec := newTestContext(http.MethodPost, "/api/v1/session/logout", "", testUserID)
		require.NoError(t, h.Logout(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
