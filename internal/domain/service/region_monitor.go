package service

import (
	"context"

	"engage/internal/domain/entity"
)

// RegionEventType identifies a callback delivered by the region monitor
type RegionEventType string

const (
	RegionEventStarted     RegionEventType = "started"
	RegionEventFailed      RegionEventType = "failed"
	RegionEventContainment RegionEventType = "containment"
	RegionEventEntered     RegionEventType = "entered"
	RegionEventExited      RegionEventType = "exited"
)

// RegionEvent is a platform callback about one monitored region
type RegionEvent struct {
	Type     RegionEventType
	RegionID string
	State    entity.ContainmentState // set for RegionEventContainment
	Err      error                   // set for RegionEventFailed
}

// RegionMonitor is the platform proximity-detection capability
type RegionMonitor interface {
	// StartMonitoring registers a region; an error is a synchronous registration failure
	StartMonitoring(ctx context.Context, region entity.MonitoredRegion) error

	// StopMonitoring unregisters a region, unknown IDs are ignored
	StopMonitoring(ctx context.Context, regionID string)

	// RequestContainmentState asks for the current containment state, answered through Events
	RequestContainmentState(ctx context.Context, regionID string)

	// Events delivers the monitor callbacks in order
	Events() <-chan RegionEvent
}

// LocationObserver receives every raw location fix
type LocationObserver interface {
	ObserveLocation(ctx context.Context, coordinate entity.Coordinate)
}
