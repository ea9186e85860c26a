package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"engage/config"
	"engage/internal/domain/entity"
	"engage/internal/domain/service"
	"engage/internal/usecase"
)

const defaultDebounceInterval = 5 * time.Second

type locationPipeline struct {
	mu       sync.Mutex
	logger   *slog.Logger
	fetcher  service.NearbyStoreFetcher
	geofence usecase.GeofenceUsecase
	metrics  service.MetricsRecorder
	interval time.Duration
	now      func() time.Time

	enabled     bool
	hasAccepted bool
	watermark   time.Time

	inflight sync.WaitGroup
}

// NewLocationPipeline creates the debounced location pipeline, enabled
func NewLocationPipeline(
	logger *slog.Logger,
	fetcher service.NearbyStoreFetcher,
	geofence usecase.GeofenceUsecase,
	metrics service.MetricsRecorder,
	cfg *config.Config,
) usecase.LocationPipeline {
	interval := defaultDebounceInterval
	if cfg.Engagement != nil && cfg.Engagement.DebounceInterval > 0 {
		interval = cfg.Engagement.DebounceInterval
	}

	return newLocationPipeline(logger, fetcher, geofence, metrics, interval, time.Now)
}

func newLocationPipeline(
	logger *slog.Logger,
	fetcher service.NearbyStoreFetcher,
	geofence usecase.GeofenceUsecase,
	metrics service.MetricsRecorder,
	interval time.Duration,
	now func() time.Time,
) *locationPipeline {
	return &locationPipeline{
		logger:   logger,
		fetcher:  fetcher,
		geofence: geofence,
		metrics:  metrics,
		interval: interval,
		now:      now,
		enabled:  true,
	}
}

// SetEnabled turns the pipeline on or off; fetches already in flight still complete
func (p *locationPipeline) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enabled = enabled
}

// OnLocationUpdate drops fixes arriving within the debounce interval of the last accepted fix
func (p *locationPipeline) OnLocationUpdate(ctx context.Context, coordinate entity.Coordinate, timestamp time.Time) bool {
	if timestamp.IsZero() {
		timestamp = p.now()
	}

	p.mu.Lock()
	if !p.enabled {
		p.mu.Unlock()
		p.metrics.LocationFix(service.LocationDisabled)

		return false
	}
	if p.hasAccepted && timestamp.Sub(p.watermark) < p.interval {
		p.mu.Unlock()
		p.metrics.LocationFix(service.LocationDebounced)

		return false
	}

	// The watermark moves before the fetch starts so a burst during the fetch is still rejected.
	p.watermark = timestamp
	p.hasAccepted = true
	p.inflight.Add(1)
	p.mu.Unlock()

	p.metrics.LocationFix(service.LocationAccepted)

	go p.refresh(context.WithoutCancel(ctx), coordinate)

	return true
}

func (p *locationPipeline) refresh(ctx context.Context, coordinate entity.Coordinate) {
	defer p.inflight.Done()

	stores, err := p.fetcher.FetchNearby(ctx, coordinate)
	if err != nil {
		p.metrics.NearbyFetch(false)
		p.logger.Warn("Nearby store fetch failed, keeping monitored regions",
			slog.Float64("latitude", coordinate.Latitude),
			slog.Float64("longitude", coordinate.Longitude),
			slog.Any("error", err),
		)

		return
	}

	p.metrics.NearbyFetch(true)
	added, removed := p.geofence.Reconcile(ctx, stores)
	if len(added) > 0 || len(removed) > 0 {
		p.logger.Info("Monitored regions updated",
			slog.Int("stores", len(stores)),
			slog.Any("added", added),
			slog.Any("removed", removed),
		)
	}
}

// Wait blocks until every in-flight fetch has completed
func (p *locationPipeline) Wait() {
	p.inflight.Wait()
}
