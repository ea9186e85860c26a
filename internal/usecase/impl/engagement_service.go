package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"engage/internal/domain/entity"
	"engage/internal/domain/service"
	"engage/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// EngagementParams holds the collaborators of the engagement engine
type EngagementParams struct {
	fx.In

	Logger      *slog.Logger
	Monitor     service.RegionMonitor
	Geofence    usecase.GeofenceUsecase
	Pipeline    usecase.LocationPipeline
	Issuer      usecase.NotificationIssuer
	RateLimiter usecase.RateLimiter
	Publisher   service.EventPublisher
	Observers   []service.LocationObserver `group:"location_observers"`
}

type engagementService struct {
	logger      *slog.Logger
	monitor     service.RegionMonitor
	geofence    usecase.GeofenceUsecase
	pipeline    usecase.LocationPipeline
	issuer      usecase.NotificationIssuer
	rateLimiter usecase.RateLimiter
	publisher   service.EventPublisher
	observers   []service.LocationObserver
	now         func() time.Time

	enabled atomic.Bool
}

// NewEngagementService wires the engine and routes region entries to the notification issuer
func NewEngagementService(params EngagementParams) usecase.EngagementUsecase {
	svc := &engagementService{
		logger:      params.Logger,
		monitor:     params.Monitor,
		geofence:    params.Geofence,
		pipeline:    params.Pipeline,
		issuer:      params.Issuer,
		rateLimiter: params.RateLimiter,
		publisher:   params.Publisher,
		observers:   params.Observers,
		now:         time.Now,
	}
	svc.enabled.Store(true)
	svc.geofence.SetEnterHandler(svc.handleRegionEntered)

	return svc
}

// Run dispatches region monitor callbacks one at a time until ctx is done
func (s *engagementService) Run(ctx context.Context) {
	events := s.monitor.Events()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				s.logger.Info("Region monitor event stream closed")

				return
			}
			s.dispatch(ctx, event)
		}
	}
}

func (s *engagementService) dispatch(ctx context.Context, event service.RegionEvent) {
	switch event.Type {
	case service.RegionEventStarted:
		s.geofence.HandleMonitoringStarted(ctx, event.RegionID)
	case service.RegionEventFailed:
		s.geofence.HandleMonitoringFailed(ctx, event.RegionID, event.Err)
	case service.RegionEventContainment:
		s.geofence.HandleContainmentState(ctx, event.RegionID, event.State)
	case service.RegionEventEntered:
		s.geofence.HandleRegionEntered(ctx, event.RegionID)
	case service.RegionEventExited:
		// exit transitions are not tracked
	default:
		s.logger.Warn("Unknown region event",
			slog.String("type", string(event.Type)),
			slog.String("region_id", event.RegionID),
		)
	}
}

func (s *engagementService) handleRegionEntered(ctx context.Context, store *entity.Store) {
	s.logger.Info("Entered store region",
		slog.String("store_id", store.ID),
		slog.String("merchant_id", store.MerchantID),
	)

	notified := s.issuer.Issue(ctx, store)

	event := &service.RegionEntryEvent{
		RequestID:  uuid.NewString(),
		StoreID:    store.ID,
		MerchantID: store.MerchantID,
		Name:       store.Name,
		Latitude:   store.Latitude,
		Longitude:  store.Longitude,
		OfferTitle: store.OfferTitle,
		Notified:   notified,
		EnteredAt:  s.now(),
	}
	if err := s.publisher.PublishRegionEntryEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish region entry event",
			slog.String("store_id", store.ID),
			slog.String("request_id", event.RequestID),
			slog.Any("error", err),
		)
	}
}

// OnLocationUpdate hands the fix to every observer and to the debounced pipeline
func (s *engagementService) OnLocationUpdate(ctx context.Context, coordinate entity.Coordinate, timestamp time.Time) bool {
	for _, observer := range s.observers {
		observer.ObserveLocation(ctx, coordinate)
	}

	return s.pipeline.OnLocationUpdate(ctx, coordinate, timestamp)
}

// Enable resumes location-triggered engagement
func (s *engagementService) Enable() {
	s.enabled.Store(true)
	s.pipeline.SetEnabled(true)
	s.logger.Info("Engagement enabled")
}

// Disable stops the pipeline and every monitored region; fetches in flight may still reconcile
func (s *engagementService) Disable(ctx context.Context) {
	s.enabled.Store(false)
	s.pipeline.SetEnabled(false)
	s.geofence.StopAll(ctx)
	s.logger.Info("Engagement disabled")
}

// SetNotificationPermission forwards the permission signal to the issuer
func (s *engagementService) SetNotificationPermission(granted bool) {
	s.issuer.SetPermission(granted)
	s.logger.Info("Notification permission changed", slog.Bool("granted", granted))
}

// Status returns the engine state as seen by the issuer and the geofence manager
func (s *engagementService) Status() usecase.EngagementStatus {
	return usecase.EngagementStatus{
		Enabled:              s.enabled.Load(),
		NotificationsAllowed: s.issuer.Permitted(),
		Regions:              s.geofence.Regions(),
	}
}

// History returns the rate limiter's notification history
func (s *engagementService) History() []entity.NotificationRecord {
	return s.rateLimiter.History()
}

// MerchantStats returns the rate limit window counts for one merchant
func (s *engagementService) MerchantStats(merchantID string) usecase.MerchantWindowStats {
	return s.rateLimiter.Stats(merchantID)
}
