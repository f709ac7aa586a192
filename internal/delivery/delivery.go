// Package delivery defines the transport-facing servers started by the fx apps.
package delivery

import "context"

// Delivery is a long-running server. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
