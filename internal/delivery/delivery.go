// Package delivery defines the contract every transport implementation satisfies.
package delivery

import "context"

// Delivery is a serving endpoint, such as the HTTP server. Implementations
// block in Serve until the endpoint stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
