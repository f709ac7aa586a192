// Package notification delivers push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"nexttoyou/config"
	"nexttoyou/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// multicastClient is the part of *messaging.Client the service uses.
type multicastClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastClient
	logger *slog.Logger
}

// Params holds dependencies for the Firebase service, injected by Fx.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFirebaseService creates a Firebase notification service. Without a
// credentials file it falls back to Application Default Credentials.
func NewFirebaseService(params Params) (service.NotificationService, error) {
	var (
		appCfg *firebase.Config
		opts   []option.ClientOption
	)
	if cfg := params.Config.Firebase; cfg != nil {
		if cfg.ProjectID != "" {
			appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
		}
		if cfg.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
		}
	}

	app, err := firebase.NewApp(params.Ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
		logger: params.Logger,
	}, nil
}

// SendMulticast sends msg to up to service.MaxMulticastTokens tokens.
func (s *firebaseService) SendMulticast(ctx context.Context, tokens []string, msg service.PushMessage) (*service.BatchResult, error) {
	if len(tokens) == 0 {
		return &service.BatchResult{}, nil
	}
	if len(tokens) > service.MaxMulticastTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxMulticastTokens)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.BatchResult{
		SuccessCount:  response.SuccessCount,
		FailureCount:  response.FailureCount,
		InvalidTokens: make([]string, 0),
	}
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil || idx >= len(tokens) {
			continue
		}

		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])

			continue
		}

		s.logger.Debug("Push to device failed",
			slog.String("token_prefix", tokens[idx][:min(10, len(tokens[idx]))]),
			slog.Any("error", sendResponse.Error),
		)
	}

	return result, nil
}
