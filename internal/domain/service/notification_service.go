package service

import (
	"context"
)

// MaxMulticastTokens is the largest token batch a single multicast may carry.
const MaxMulticastTokens = 500

// PushMessage is the user-visible content of a push notification.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// BatchResult summarises one multicast send.
type BatchResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string // Tokens the provider reported as unregistered or malformed
}

// NotificationService delivers push notifications to device tokens.
type NotificationService interface {
	// SendMulticast sends msg to up to MaxMulticastTokens tokens.
	SendMulticast(ctx context.Context, tokens []string, msg PushMessage) (*BatchResult, error)
}
