package service

import (
	"context"
)

// ProximityEvent is an emitted proximity alert on its way to the push worker.
type ProximityEvent struct {
	RequestID      string  `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string  `json:"notification_id"`
	UserID         string  `json:"user_id"`
	Title          string  `json:"title"`
	Body           string  `json:"body"`
	StoreID        string  `json:"store_id"`
	StoreName      string  `json:"store_name"`
	ItemName       string  `json:"item_name"`
	Price          float64 `json:"price"`
	DistanceMeters int     `json:"distance_meters"`
	Latitude       float64 `json:"lat"`
	Longitude      float64 `json:"lon"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProximityEvent hands an alert to the push pipeline.
	PublishProximityEvent(ctx context.Context, event *ProximityEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
