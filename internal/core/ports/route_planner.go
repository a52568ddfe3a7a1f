package ports

import (
	"context"

	"routeboard/internal/core/domain/model/route"
)

// RoutePlanner defines the contract with the external routing service that
// turns a set of delivery addresses into an ordered stop sequence with travel
// durations. Results are consumed as-is; a failed call surfaces to the caller
// and no stale result is ever substituted.
type RoutePlanner interface {
	// Plan requests an optimized stop sequence for the given orders starting
	// from the start address.
	Plan(ctx context.Context, request route.Request) (route.Plan, error)
}
