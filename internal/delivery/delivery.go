// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a servable transport (HTTP today). Serve blocks until the
// server stops; shutdown runs through the fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
