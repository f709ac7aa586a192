package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"nexttoyou/config"
	"nexttoyou/internal/delivery"
	apimiddleware "nexttoyou/internal/delivery/api/middleware"
	"nexttoyou/internal/delivery/api/router"
	"nexttoyou/internal/delivery/api/validator"
	deliverycontext "nexttoyou/internal/delivery/context"
	"nexttoyou/internal/delivery/middleware"
	"nexttoyou/internal/domain/lifecycle"
	"nexttoyou/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := newEcho(params.Cfg, params.Logger)

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEcho builds the echo instance and the middleware chain shared by every
// proximity route.
func newEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Recover first so panics anywhere below are caught
	echoServer.Use(echomiddleware.Recover())

	// Request ID before logger so every log line carries it
	requestIDMiddleware := middleware.NewRequestIDMiddleware(logger)
	echoServer.Use(requestIDMiddleware.Process)

	loggerMiddleware := middleware.NewLoggerMiddleware(logger, cfg)
	echoServer.Use(loggerMiddleware.Handle)

	// Browser clients need the bearer token and request ID headers through,
	// and read the request ID back for support tickets.
	echoServer.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{
			echo.HeaderAuthorization,
			echo.HeaderContentType,
			deliverycontext.HeaderXRequestID,
		},
		ExposeHeaders: []string{deliverycontext.HeaderXRequestID},
	}))

	// Position reports and settings are small; anything larger is rejected
	// before binding.
	echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	errorMiddleware := apimiddleware.NewErrorMiddleware(logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = validator.New()

	return echoServer
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	attrs := []any{slog.String("host_port", hostPort)}
	if s.cfg.Proximity != nil {
		attrs = append(attrs,
			slog.Float64("explore_radius_meters", s.cfg.Proximity.ExploreRadiusMeters),
			slog.Float64("max_search_radius_meters", s.cfg.Proximity.MaxSearchRadiusMeters),
		)
	}
	if s.cfg.Tracking != nil {
		attrs = append(attrs, slog.Duration("tracking_min_interval", s.cfg.Tracking.MinInterval))
	}
	s.logger.Info("Starting proximity API server", attrs...)
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down proximity API server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
