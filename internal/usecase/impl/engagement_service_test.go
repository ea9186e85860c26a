package impl

import (
	"context"
	"testing"
	"time"

	"engage/internal/domain/entity"
	"engage/internal/domain/repository"
	"engage/internal/domain/service"
	mockRepo "engage/internal/mocks/repository"
	mockSvc "engage/internal/mocks/service"
	mockUsecase "engage/internal/mocks/usecase"
	"engage/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type engagementMocks struct {
	monitor     *mockSvc.MockRegionMonitor
	geofence    *mockUsecase.MockGeofenceUsecase
	pipeline    *mockUsecase.MockLocationPipeline
	issuer      *mockUsecase.MockNotificationIssuer
	rateLimiter *mockUsecase.MockRateLimiter
	publisher   *mockSvc.MockEventPublisher
	observer    *mockSvc.MockLocationObserver
	onEnter     usecase.RegionEnterHandler
}

func createTestEngagementService(t *testing.T) (*engagementService, *engagementMocks) {
	t.Helper()

	m := &engagementMocks{
		monitor:     mockSvc.NewMockRegionMonitor(t),
		geofence:    mockUsecase.NewMockGeofenceUsecase(t),
		pipeline:    mockUsecase.NewMockLocationPipeline(t),
		issuer:      mockUsecase.NewMockNotificationIssuer(t),
		rateLimiter: mockUsecase.NewMockRateLimiter(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		observer:    mockSvc.NewMockLocationObserver(t),
	}

	m.geofence.EXPECT().
		SetEnterHandler(mock.Anything).
		Run(func(handler usecase.RegionEnterHandler) { m.onEnter = handler }).
		Return().
		Once()

	svc := NewEngagementService(EngagementParams{
		Logger:      testLogger(),
		Monitor:     m.monitor,
		Geofence:    m.geofence,
		Pipeline:    m.pipeline,
		Issuer:      m.issuer,
		RateLimiter: m.rateLimiter,
		Publisher:   m.publisher,
		Observers:   []service.LocationObserver{m.observer},
	}).(*engagementService)
	require.NotNil(t, m.onEnter)

	return svc, m
}

func TestEngagementService_Run_DispatchesMonitorEvents(t *testing.T) {
	svc, m := createTestEngagementService(t)

	events := make(chan service.RegionEvent, 5)
	m.monitor.EXPECT().Events().Return(events).Once()

	cause := errors.New("limit reached")
	ctx := context.Background()
	m.geofence.EXPECT().HandleMonitoringStarted(ctx, "A").Return().Once()
	m.geofence.EXPECT().HandleContainmentState(ctx, "A", entity.ContainmentInside).Return().Once()
	m.geofence.EXPECT().HandleMonitoringFailed(ctx, "B", cause).Return().Once()
	m.geofence.EXPECT().HandleRegionEntered(ctx, "C").Return().Once()

	events <- service.RegionEvent{Type: service.RegionEventStarted, RegionID: "A"}
	events <- service.RegionEvent{Type: service.RegionEventContainment, RegionID: "A", State: entity.ContainmentInside}
	events <- service.RegionEvent{Type: service.RegionEventFailed, RegionID: "B", Err: cause}
	events <- service.RegionEvent{Type: service.RegionEventEntered, RegionID: "C"}
	events <- service.RegionEvent{Type: service.RegionEventExited, RegionID: "C"}
	close(events)

	svc.Run(ctx)
}

func TestEngagementService_Run_StopsOnCancel(t *testing.T) {
	svc, m := createTestEngagementService(t)

	m.monitor.EXPECT().Events().Return(make(chan service.RegionEvent)).Once()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestEngagementService_RegionEntered_IssuesAndPublishes(t *testing.T) {
	svc, m := createTestEngagementService(t)
	svc.now = func() time.Time { return at(2, 12) }

	ctx := context.Background()
	store := testStore("P1", "M1")
	store.OfferTitle = "Free coffee"

	m.issuer.EXPECT().Issue(ctx, store).Return(true).Once()
	m.publisher.EXPECT().
		PublishRegionEntryEvent(ctx, mock.MatchedBy(func(e *service.RegionEntryEvent) bool {
			return e.StoreID == "P1" &&
				e.MerchantID == "M1" &&
				e.OfferTitle == "Free coffee" &&
				e.Notified &&
				e.RequestID != "" &&
				e.EnteredAt.Equal(at(2, 12))
		})).
		Return(nil).
		Once()

	m.onEnter(ctx, store)
}

func TestEngagementService_RegionEntered_PublishFailureIsLogged(t *testing.T) {
	_, m := createTestEngagementService(t)

	ctx := context.Background()
	store := testStore("P1", "M1")

	m.issuer.EXPECT().Issue(ctx, store).Return(false).Once()
	m.publisher.EXPECT().
		PublishRegionEntryEvent(ctx, mock.MatchedBy(func(e *service.RegionEntryEvent) bool { return !e.Notified })).
		Return(errors.New("topic not found")).
		Once()

	m.onEnter(ctx, store)
}

func TestEngagementService_OnLocationUpdate(t *testing.T) {
	svc, m := createTestEngagementService(t)

	ctx := context.Background()
	ts := at(2, 12)

	m.observer.EXPECT().ObserveLocation(ctx, taipei101).Return().Once()
	m.pipeline.EXPECT().OnLocationUpdate(ctx, taipei101, ts).Return(true).Once()

	assert.True(t, svc.OnLocationUpdate(ctx, taipei101, ts))
}

func TestEngagementService_EnableDisable(t *testing.T) {
	svc, m := createTestEngagementService(t)
	ctx := context.Background()

	m.geofence.EXPECT().Regions().Return(nil)
	m.issuer.EXPECT().Permitted().Return(true)

	m.pipeline.EXPECT().SetEnabled(false).Return().Once()
	m.geofence.EXPECT().StopAll(ctx).Return().Once()

	svc.Disable(ctx)
	assert.False(t, svc.Status().Enabled)

	m.pipeline.EXPECT().SetEnabled(true).Return().Once()

	svc.Enable()
	assert.True(t, svc.Status().Enabled)
}

func TestEngagementService_Status(t *testing.T) {
	svc, m := createTestEngagementService(t)

	regions := []entity.MonitoredRegion{entity.NewMonitoredRegion(testStore("A", "M1"), 100)}
	m.geofence.EXPECT().Regions().Return(regions)
	m.issuer.EXPECT().SetPermission(false).Return().Once()
	m.issuer.EXPECT().Permitted().Return(false).Once()

	svc.SetNotificationPermission(false)

	assert.Equal(t, usecase.EngagementStatus{
		Enabled:              true,
		NotificationsAllowed: false,
		Regions:              regions,
	}, svc.Status())
}

func TestEngagementService_History(t *testing.T) {
	svc, m := createTestEngagementService(t)

	history := []entity.NotificationRecord{record("P1", "M1", at(2, 11))}
	m.rateLimiter.EXPECT().History().Return(history).Once()

	assert.Equal(t, history, svc.History())
}

func TestEngagementService_MerchantStats(t *testing.T) {
	svc, m := createTestEngagementService(t)

	stats := usecase.MerchantWindowStats{Today: 1, Week: 2, Month: 3, MerchantWeek: 1, MerchantMonth: 2, HoursSinceLast: 5}
	m.rateLimiter.EXPECT().Stats("M1").Return(stats).Once()

	assert.Equal(t, stats, svc.MerchantStats("M1"))
}

// End to end through the real limiter, issuer and reconciler.
func TestEngagementService_AlreadyInsideNotifiesOnce(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: at(2, 12)}

	repo := mockRepo.NewMockNotificationHistoryRepository(t)
	repo.EXPECT().LoadHistory(mock.Anything).Return(nil, repository.ErrHistoryNotFound).Once()
	repo.EXPECT().SaveHistory(mock.Anything, mock.Anything).Return(nil).Once()

	monitor := mockSvc.NewMockRegionMonitor(t)
	notifier := mockSvc.NewMockLocalNotifier(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	fetcher := mockSvc.NewMockNearbyStoreFetcher(t)
	metrics := testMetrics(t)

	rateLimiter := newRateLimiter(ctx, testLogger(), repo, testPolicy(), testLocation, clock.Now)
	geofence := newGeofenceService(testLogger(), monitor, metrics, 20, 100)
	pipeline := newLocationPipeline(testLogger(), fetcher, geofence, metrics, 5*time.Second, clock.Now)
	issuer := NewNotificationIssuer(testLogger(), rateLimiter, notifier, metrics)

	events := make(chan service.RegionEvent, 4)
	monitor.EXPECT().Events().Return(events).Once()
	monitor.EXPECT().StartMonitoring(mock.Anything, mock.Anything).Return(nil).Once()
	monitor.EXPECT().RequestContainmentState(mock.Anything, "P1").Return().Once()

	fetcher.EXPECT().FetchNearby(mock.Anything, taipei101).Return(testStores("P1"), nil).Once()
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Once()
	publisher.EXPECT().PublishRegionEntryEvent(mock.Anything, mock.Anything).Return(nil).Once()

	engine := NewEngagementService(EngagementParams{
		Logger:      testLogger(),
		Monitor:     monitor,
		Geofence:    geofence,
		Pipeline:    pipeline,
		Issuer:      issuer,
		RateLimiter: rateLimiter,
		Publisher:   publisher,
	})

	require.True(t, engine.OnLocationUpdate(ctx, taipei101, clock.Now()))
	pipeline.Wait()

	events <- service.RegionEvent{Type: service.RegionEventStarted, RegionID: "P1"}
	events <- service.RegionEvent{Type: service.RegionEventContainment, RegionID: "P1", State: entity.ContainmentInside}
	events <- service.RegionEvent{Type: service.RegionEventContainment, RegionID: "P1", State: entity.ContainmentInside}
	close(events)

	engine.Run(ctx)

	assert.True(t, engine.Status().NotificationsAllowed)
	engine.SetNotificationPermission(false)
	assert.False(t, engine.Status().NotificationsAllowed)
	assert.False(t, issuer.Permitted())

	history := engine.History()
	require.Len(t, history, 1)
	assert.Equal(t, "P1", history[0].PointID)
}
