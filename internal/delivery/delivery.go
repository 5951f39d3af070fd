// Package delivery holds the inbound adapters that expose the cart to the outside world.
package delivery

import "context"

// Delivery is a long-running inbound adapter started by the application root.
type Delivery interface {
	Serve(ctx context.Context) error
}
