package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"

	"engage/config"
	"engage/internal/domain/entity"
	"engage/internal/domain/service"
	"engage/internal/usecase"
)

const (
	defaultRegionCapacity = 20
	defaultRegionRadius   = 100.0
)

type monitoredStore struct {
	store  *entity.Store
	region entity.MonitoredRegion

	// set between the start confirmation and the first containment answer
	awaitingContainment bool
}

type geofenceService struct {
	// opMu serializes Reconcile and StopAll including their monitor calls;
	// mu guards regions and is the only lock taken by monitor callbacks.
	opMu sync.Mutex
	mu   sync.Mutex

	logger   *slog.Logger
	monitor  service.RegionMonitor
	metrics  service.MetricsRecorder
	capacity int
	radius   float64
	regions  map[string]*monitoredStore
	onEnter  usecase.RegionEnterHandler
}

// NewGeofenceService creates the manager of the monitored region set
func NewGeofenceService(
	logger *slog.Logger,
	monitor service.RegionMonitor,
	metrics service.MetricsRecorder,
	cfg *config.Config,
) usecase.GeofenceUsecase {
	capacity := defaultRegionCapacity
	radius := defaultRegionRadius
	if cfg.Engagement != nil {
		if cfg.Engagement.RegionCapacity > 0 {
			capacity = cfg.Engagement.RegionCapacity
		}
		if cfg.Engagement.RegionRadius > 0 {
			radius = cfg.Engagement.RegionRadius
		}
	}

	return newGeofenceService(logger, monitor, metrics, capacity, radius)
}

func newGeofenceService(
	logger *slog.Logger,
	monitor service.RegionMonitor,
	metrics service.MetricsRecorder,
	capacity int,
	radius float64,
) *geofenceService {
	return &geofenceService{
		logger:   logger,
		monitor:  monitor,
		metrics:  metrics,
		capacity: capacity,
		radius:   radius,
		regions:  make(map[string]*monitoredStore),
	}
}

// SetEnterHandler installs the entry event callback
func (g *geofenceService) SetEnterHandler(handler usecase.RegionEnterHandler) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.onEnter = handler
}

// Reconcile moves the monitored set towards the first capacity candidates.
// Candidate order is kept as given; the caller is expected to sort nearest first.
func (g *geofenceService) Reconcile(ctx context.Context, candidates []*entity.Store) (added, removed []string) {
	g.opMu.Lock()
	defer g.opMu.Unlock()

	if len(candidates) > g.capacity {
		candidates = candidates[:g.capacity]
	}

	desired := make(map[string]*entity.Store, len(candidates))
	order := make([]string, 0, len(candidates))
	for _, store := range candidates {
		if store == nil {
			continue
		}
		if _, dup := desired[store.ID]; dup {
			continue
		}
		desired[store.ID] = store
		order = append(order, store.ID)
	}

	g.mu.Lock()

	if g.sameRegionsLocked(desired) {
		g.mu.Unlock()

		return nil, nil
	}

	// Drop stale entries before the monitor hears about them.
	for id := range g.regions {
		if _, ok := desired[id]; !ok {
			delete(g.regions, id)
			removed = append(removed, id)
		}
	}

	remaining := g.capacity - len(g.regions)
	toStart := make([]entity.MonitoredRegion, 0, len(order))
	for _, id := range order {
		if remaining <= 0 {
			break
		}
		if _, ok := g.regions[id]; ok {
			continue
		}

		region := entity.NewMonitoredRegion(desired[id], g.radius)
		g.regions[id] = &monitoredStore{store: desired[id], region: region}
		toStart = append(toStart, region)
		added = append(added, id)
		remaining--
	}

	g.mu.Unlock()

	slices.Sort(removed)
	for _, id := range removed {
		g.monitor.StopMonitoring(ctx, id)
	}

	for _, region := range toStart {
		if err := g.monitor.StartMonitoring(ctx, region); err != nil {
			g.HandleMonitoringFailed(ctx, region.ID, err)
		}
	}

	count := g.count()
	g.metrics.RegionsMonitored(count)
	g.logger.Debug("Monitored regions reconciled",
		slog.Int("candidates", len(order)),
		slog.Int("added", len(added)),
		slog.Int("removed", len(removed)),
		slog.Int("monitored", count),
	)

	return added, removed
}

func (g *geofenceService) sameRegionsLocked(desired map[string]*entity.Store) bool {
	if len(desired) != len(g.regions) {
		return false
	}
	for id := range desired {
		if _, ok := g.regions[id]; !ok {
			return false
		}
	}

	return true
}

// StopAll empties the monitored set and stops every previously monitored region
func (g *geofenceService) StopAll(ctx context.Context) {
	g.opMu.Lock()
	defer g.opMu.Unlock()

	g.mu.Lock()
	ids := make([]string, 0, len(g.regions))
	for id := range g.regions {
		ids = append(ids, id)
	}
	g.regions = make(map[string]*monitoredStore)
	g.mu.Unlock()

	slices.Sort(ids)
	for _, id := range ids {
		g.monitor.StopMonitoring(ctx, id)
	}

	g.metrics.RegionsMonitored(0)
	g.logger.Info("Stopped monitoring all regions", slog.Int("stopped", len(ids)))
}

// HandleMonitoringStarted asks for the containment state of a newly monitored region,
// since entry events only fire on transitions
func (g *geofenceService) HandleMonitoringStarted(ctx context.Context, regionID string) {
	g.mu.Lock()
	entry, ok := g.regions[regionID]
	if ok {
		entry.awaitingContainment = true
	}
	g.mu.Unlock()

	if !ok {
		g.logger.Debug("Ignoring start confirmation for unmonitored region", slog.String("region_id", regionID))

		return
	}

	g.monitor.RequestContainmentState(ctx, regionID)
}

// HandleContainmentState emits an entry event when the device already is inside a new region
func (g *geofenceService) HandleContainmentState(ctx context.Context, regionID string, state entity.ContainmentState) {
	g.mu.Lock()
	entry, ok := g.regions[regionID]
	pending := ok && entry.awaitingContainment
	if pending {
		entry.awaitingContainment = false
	}
	g.mu.Unlock()

	if !pending || state != entity.ContainmentInside {
		return
	}

	g.logger.Debug("Device already inside new region", slog.String("region_id", regionID))
	g.emitEnter(ctx, entry.store)
}

// HandleMonitoringFailed drops a region the monitor could not register, reclaiming its capacity
func (g *geofenceService) HandleMonitoringFailed(ctx context.Context, regionID string, cause error) {
	g.mu.Lock()
	_, ok := g.regions[regionID]
	delete(g.regions, regionID)
	count := len(g.regions)
	g.mu.Unlock()

	if !ok {
		return
	}

	g.metrics.RegionRegistrationFailed()
	g.metrics.RegionsMonitored(count)
	g.logger.Warn("Region monitoring failed",
		slog.String("region_id", regionID),
		slog.Any("error", cause),
	)
}

// HandleRegionEntered emits an entry event for a monitored region
func (g *geofenceService) HandleRegionEntered(ctx context.Context, regionID string) {
	g.mu.Lock()
	entry, ok := g.regions[regionID]
	if ok {
		entry.awaitingContainment = false
	}
	g.mu.Unlock()

	if !ok {
		g.logger.Debug("Ignoring entry for unmonitored region", slog.String("region_id", regionID))

		return
	}

	g.emitEnter(ctx, entry.store)
}

func (g *geofenceService) emitEnter(ctx context.Context, store *entity.Store) {
	g.mu.Lock()
	handler := g.onEnter
	g.mu.Unlock()

	if handler == nil {
		return
	}

	handler(ctx, store)
}

// Regions returns the currently monitored regions ordered by ID
func (g *geofenceService) Regions() []entity.MonitoredRegion {
	g.mu.Lock()
	defer g.mu.Unlock()

	regions := make([]entity.MonitoredRegion, 0, len(g.regions))
	for _, entry := range g.regions {
		regions = append(regions, entry.region)
	}
	slices.SortFunc(regions, func(a, b entity.MonitoredRegion) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return regions
}

func (g *geofenceService) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.regions)
}
