// Package delivery defines the servers started by the application entrypoint.
package delivery

import "context"

// Delivery is a long-running server. Serve blocks until the server stops;
// shutdown is driven by the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
