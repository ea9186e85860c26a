// Package geofence is a software region monitor driven by the location fixes it observes.
package geofence

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"

	"engage/config"
	"engage/internal/domain/entity"
	"engage/internal/domain/service"

	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

const (
	defaultMaxRegions = 20
	defaultQueueSize  = 64
)

type watchedRegion struct {
	region entity.MonitoredRegion
	state  entity.ContainmentState
}

// Monitor implements service.RegionMonitor and service.LocationObserver.
// Callbacks are delivered on a buffered channel; when the buffer is full they are dropped.
type Monitor struct {
	mu         sync.Mutex
	logger     *slog.Logger
	maxRegions int
	regions    map[string]*watchedRegion
	last       *entity.Coordinate
	events     chan service.RegionEvent
}

// NewMonitor creates a monitor sized by the monitor config section
func NewMonitor(logger *slog.Logger, cfg *config.Config) *Monitor {
	maxRegions, queueSize := defaultMaxRegions, defaultQueueSize
	if cfg.Monitor != nil {
		if cfg.Monitor.MaxRegions > 0 {
			maxRegions = cfg.Monitor.MaxRegions
		}
		if cfg.Monitor.QueueSize > 0 {
			queueSize = cfg.Monitor.QueueSize
		}
	}

	return newMonitor(logger, maxRegions, queueSize)
}

func newMonitor(logger *slog.Logger, maxRegions, queueSize int) *Monitor {
	return &Monitor{
		logger:     logger,
		maxRegions: maxRegions,
		regions:    make(map[string]*watchedRegion),
		events:     make(chan service.RegionEvent, queueSize),
	}
}

// Events delivers monitor callbacks in the order they were produced
func (m *Monitor) Events() <-chan service.RegionEvent {
	return m.events
}

// StartMonitoring rejects invalid geometry synchronously; exceeding the region limit
// is reported as a failed event, like a platform registration failure
func (m *Monitor) StartMonitoring(_ context.Context, region entity.MonitoredRegion) error {
	if region.ID == "" {
		return errors.New("region id is required")
	}
	if region.Radius <= 0 {
		return errors.Errorf("region %s: radius must be positive", region.ID)
	}
	if !region.Center.Valid() {
		return errors.Errorf("region %s: center out of range", region.ID)
	}

	m.mu.Lock()
	_, restart := m.regions[region.ID]
	if !restart && len(m.regions) >= m.maxRegions {
		m.mu.Unlock()
		m.emit(service.RegionEvent{
			Type:     service.RegionEventFailed,
			RegionID: region.ID,
			Err:      errors.Errorf("region limit of %d reached", m.maxRegions),
		})

		return nil
	}

	// The initial state is recorded silently; only later transitions fire.
	m.regions[region.ID] = &watchedRegion{region: region, state: m.containmentLocked(region)}
	m.mu.Unlock()

	m.emit(service.RegionEvent{Type: service.RegionEventStarted, RegionID: region.ID})

	return nil
}

// StopMonitoring forgets the region; unknown IDs are ignored
func (m *Monitor) StopMonitoring(_ context.Context, regionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.regions, regionID)
}

// RequestContainmentState answers with a containment event for a monitored region
func (m *Monitor) RequestContainmentState(_ context.Context, regionID string) {
	m.mu.Lock()
	watched, ok := m.regions[regionID]
	var state entity.ContainmentState
	if ok {
		state = m.containmentLocked(watched.region)
		watched.state = state
	}
	m.mu.Unlock()

	if !ok {
		m.logger.Debug("Containment requested for unknown region", slog.String("region_id", regionID))

		return
	}

	m.emit(service.RegionEvent{Type: service.RegionEventContainment, RegionID: regionID, State: state})
}

// ObserveLocation records the fix and emits transitions for the monitored regions
func (m *Monitor) ObserveLocation(_ context.Context, coordinate entity.Coordinate) {
	if !coordinate.Valid() {
		m.logger.Warn("Ignoring invalid location fix",
			slog.Float64("latitude", coordinate.Latitude),
			slog.Float64("longitude", coordinate.Longitude),
		)

		return
	}

	m.mu.Lock()
	m.last = &coordinate

	var transitions []service.RegionEvent
	for id, watched := range m.regions {
		previous := watched.state
		watched.state = m.containmentLocked(watched.region)

		switch {
		case watched.state == entity.ContainmentInside && previous != entity.ContainmentInside:
			if watched.region.NotifyOnEntry {
				transitions = append(transitions, service.RegionEvent{Type: service.RegionEventEntered, RegionID: id})
			}
		case watched.state == entity.ContainmentOutside && previous == entity.ContainmentInside:
			if watched.region.NotifyOnExit {
				transitions = append(transitions, service.RegionEvent{Type: service.RegionEventExited, RegionID: id})
			}
		}
	}
	m.mu.Unlock()

	slices.SortFunc(transitions, func(a, b service.RegionEvent) int {
		return cmp.Compare(a.RegionID, b.RegionID)
	})
	for _, event := range transitions {
		m.emit(event)
	}
}

func (m *Monitor) containmentLocked(region entity.MonitoredRegion) entity.ContainmentState {
	if m.last == nil {
		return entity.ContainmentUnknown
	}
	if geo.Distance(m.last.Point(), region.Center.Point()) <= region.Radius {
		return entity.ContainmentInside
	}

	return entity.ContainmentOutside
}

// emit never blocks: the consumer may be the caller itself
func (m *Monitor) emit(event service.RegionEvent) {
	select {
	case m.events <- event:
	default:
		m.logger.Warn("Region event queue full, dropping event",
			slog.String("type", string(event.Type)),
			slog.String("region_id", event.RegionID),
		)
	}
}
