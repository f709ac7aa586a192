package handler

import (
	"log/slog"
	"net/http"

	"nexttoyou/internal/delivery/api/middleware"
	"nexttoyou/internal/delivery/api/response"
	"nexttoyou/internal/domain/entity"
	"nexttoyou/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProximityHandlerParams holds dependencies for ProximityHandler, injected by Fx.
type ProximityHandlerParams struct {
	fx.In

	ProximityUC usecase.ProximityUsecase
	Logger      *slog.Logger
}

// ProximityHandler serves the store search routes.
type ProximityHandler struct {
	proximityUC usecase.ProximityUsecase
	logger      *slog.Logger
}

// NewProximityHandler is the constructor for ProximityHandler
func NewProximityHandler(params ProximityHandlerParams) *ProximityHandler {
	return &ProximityHandler{
		proximityUC: params.ProximityUC,
		logger:      params.Logger,
	}
}

// SearchNearby handles GET /stores/nearby?lat&lon&radius[&q]. Without q the
// user's open tasks are matched; a present but blank q matches nothing.
func (h *ProximityHandler) SearchNearby(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var (
		query usecase.SearchQuery
		item  string
	)
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &query.Latitude).
		MustFloat64("lon", &query.Longitude).
		MustFloat64("radius", &query.RadiusMeters).
		String("q", &item).
		BindError()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", bindErrorMessage(err))
	}
	if c.QueryParams().Has("q") {
		query.ItemQuery = &item
	}

	matches, err := h.proximityUC.SearchNearby(c.Request().Context(), userID, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nonNilMatches(matches))
}

// SearchByItemName handles GET /stores/search?lat&lon&item[&radius].
func (h *ProximityHandler) SearchByItemName(c echo.Context) error {
	var (
		lat, lon, radius float64
		item             string
	)
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &lat).
		MustFloat64("lon", &lon).
		MustString("item", &item).
		Float64("radius", &radius).
		BindError()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", bindErrorMessage(err))
	}

	matches, err := h.proximityUC.SearchByItemName(c.Request().Context(), lat, lon, item, radius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nonNilMatches(matches))
}

func nonNilMatches(matches []entity.ProximityMatch) []entity.ProximityMatch {
	if matches == nil {
		return []entity.ProximityMatch{}
	}

	return matches
}

func bindErrorMessage(err error) string {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return "Invalid query parameter: " + bindErr.Field
	}

	return "Invalid query parameters"
}
