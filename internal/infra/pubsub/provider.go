package pubsub

import (
	"context"
	"log/slog"
	"sync/atomic"

	"nexttoyou/config"
	"nexttoyou/internal/domain/constants"
	"nexttoyou/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops alerts when Pub/Sub is disabled. Dropped alerts are
// logged with enough detail to reproduce them by hand and counted so shutdown
// can report how many never reached a device.
type noopPublisher struct {
	logger  *slog.Logger
	dropped atomic.Int64
}

func (p *noopPublisher) PublishProximityEvent(ctx context.Context, event *service.ProximityEvent) error {
	total := p.dropped.Add(1)
	p.logger.LogAttrs(ctx, slog.LevelInfo, "[NoopPubSub] Event publishing disabled, dropping alert",
		slog.String("notification_id", event.NotificationID),
		slog.String("user_id", event.UserID),
		slog.String("store_id", event.StoreID),
		slog.String("store", event.StoreName),
		slog.String("item", event.ItemName),
		slog.Float64("price", event.Price),
		slog.Int("distance_meters", event.DistanceMeters),
		slog.Int64("dropped_total", total),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	if n := p.dropped.Load(); n > 0 {
		p.logger.Warn("[NoopPubSub] Proximity alerts were dropped", slog.Int64("dropped_total", n))
	}

	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If PubSub is not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Warn("PubSub not configured, proximity alerts will be dropped")

		noop := &noopPublisher{logger: logger}
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return noop.Close()
			},
		})

		return noop, nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
