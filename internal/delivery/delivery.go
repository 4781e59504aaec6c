// Package delivery holds the inbound transports started by main.
package delivery

import "context"

// Delivery is a long-running transport. Serve blocks until the transport stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
