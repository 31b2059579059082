// Package delivery defines the entry points of the application.
// Each delivery (HTTP API, Pub/Sub worker) implements the same
// interface so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server started by the application entry point.
type Delivery interface {
	// Serve blocks until the server stops or the context is cancelled.
	Serve(ctx context.Context) error
}
