package usecase

import (
	"context"

	"engage/internal/domain/entity"
)

// RegionEnterHandler is called once per transition into a monitored region
type RegionEnterHandler func(ctx context.Context, store *entity.Store)

// GeofenceUsecase maintains the capacity-bounded set of monitored regions
type GeofenceUsecase interface {
	// Reconcile moves the monitored set towards candidates and returns the added and removed IDs
	Reconcile(ctx context.Context, candidates []*entity.Store) (added, removed []string)

	// StopAll stops monitoring every region
	StopAll(ctx context.Context)

	// HandleMonitoringStarted is the platform confirmation that a region is monitored
	HandleMonitoringStarted(ctx context.Context, regionID string)

	// HandleContainmentState is the platform answer to a containment query
	HandleContainmentState(ctx context.Context, regionID string, state entity.ContainmentState)

	// HandleMonitoringFailed is the platform report that a region could not be registered
	HandleMonitoringFailed(ctx context.Context, regionID string, cause error)

	// HandleRegionEntered is the platform report of an entry transition
	HandleRegionEntered(ctx context.Context, regionID string)

	// Regions returns the currently monitored regions
	Regions() []entity.MonitoredRegion

	// SetEnterHandler installs the entry event callback
	SetEnterHandler(handler RegionEnterHandler)
}
