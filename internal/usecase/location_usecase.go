package usecase

import (
	"context"
	"time"

	"engage/internal/domain/entity"
)

// LocationPipeline debounces location fixes and refreshes the monitored regions
type LocationPipeline interface {
	// OnLocationUpdate handles a fix; it reports whether the fix passed the debounce gate.
	// The fetch outlives ctx cancellation.
	OnLocationUpdate(ctx context.Context, coordinate entity.Coordinate, timestamp time.Time) bool

	// SetEnabled turns the pipeline on or off
	SetEnabled(enabled bool)

	// Wait blocks until every in-flight fetch has completed
	Wait()
}
