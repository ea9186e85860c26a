package impl

import (
	"context"
	"testing"
	"time"

	"engage/internal/domain/entity"
	mockSvc "engage/internal/mocks/service"
	mockUsecase "engage/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var taipei101 = entity.Coordinate{Latitude: 25.0340, Longitude: 121.5645}

func createTestLocationPipeline(t *testing.T, clock *fakeClock) (
	*locationPipeline,
	*mockSvc.MockNearbyStoreFetcher,
	*mockUsecase.MockGeofenceUsecase,
) {
	t.Helper()

	fetcher := mockSvc.NewMockNearbyStoreFetcher(t)
	geofence := mockUsecase.NewMockGeofenceUsecase(t)

	pipeline := newLocationPipeline(testLogger(), fetcher, geofence, testMetrics(t), 5*time.Second, clock.Now)

	return pipeline, fetcher, geofence
}

func TestLocationPipeline_OnLocationUpdate_FetchesAndReconciles(t *testing.T) {
	clock := &fakeClock{now: at(2, 12)}
	pipeline, fetcher, geofence := createTestLocationPipeline(t, clock)

	stores := testStores("A", "B")
	fetcher.EXPECT().FetchNearby(mock.Anything, taipei101).Return(stores, nil).Once()
	geofence.EXPECT().Reconcile(mock.Anything, stores).Return([]string{"A", "B"}, nil).Once()

	assert.True(t, pipeline.OnLocationUpdate(context.Background(), taipei101, clock.Now()))
	pipeline.Wait()
}

func TestLocationPipeline_OnLocationUpdate_Debounce(t *testing.T) {
	clock := &fakeClock{now: at(2, 12)}
	pipeline, fetcher, geofence := createTestLocationPipeline(t, clock)
	ctx := context.Background()

	fetcher.EXPECT().FetchNearby(mock.Anything, mock.Anything).Return(nil, nil).Times(2)
	geofence.EXPECT().Reconcile(mock.Anything, mock.Anything).Return(nil, nil).Times(2)

	start := at(2, 12)
	assert.True(t, pipeline.OnLocationUpdate(ctx, taipei101, start))
	assert.False(t, pipeline.OnLocationUpdate(ctx, taipei101, start.Add(4*time.Second)))
	assert.False(t, pipeline.OnLocationUpdate(ctx, taipei101, start.Add(4999*time.Millisecond)))

	// The interval is measured from the last accepted fix, not the last rejected one.
	assert.True(t, pipeline.OnLocationUpdate(ctx, taipei101, start.Add(5*time.Second)))
	assert.False(t, pipeline.OnLocationUpdate(ctx, taipei101, start.Add(9*time.Second)))

	pipeline.Wait()
	fetcher.AssertNumberOfCalls(t, "FetchNearby", 2)
}

func TestLocationPipeline_OnLocationUpdate_WatermarkSetBeforeFetch(t *testing.T) {
	clock := &fakeClock{now: at(2, 12)}
	pipeline, fetcher, geofence := createTestLocationPipeline(t, clock)
	ctx := context.Background()

	release := make(chan struct{})
	fetcher.EXPECT().
		FetchNearby(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, entity.Coordinate) ([]*entity.Store, error) {
			<-release

			return nil, nil
		}).
		Once()
	geofence.EXPECT().Reconcile(mock.Anything, mock.Anything).Return(nil, nil).Once()

	start := at(2, 12)
	assert.True(t, pipeline.OnLocationUpdate(ctx, taipei101, start))
	assert.False(t, pipeline.OnLocationUpdate(ctx, taipei101, start.Add(time.Second)))

	close(release)
	pipeline.Wait()
}

func TestLocationPipeline_OnLocationUpdate_ZeroTimestampUsesClock(t *testing.T) {
	clock := &fakeClock{now: at(2, 12)}
	pipeline, fetcher, geofence := createTestLocationPipeline(t, clock)
	ctx := context.Background()

	fetcher.EXPECT().FetchNearby(mock.Anything, mock.Anything).Return(nil, nil).Times(2)
	geofence.EXPECT().Reconcile(mock.Anything, mock.Anything).Return(nil, nil).Times(2)

	assert.True(t, pipeline.OnLocationUpdate(ctx, taipei101, time.Time{}))
	clock.now = clock.now.Add(2 * time.Second)
	assert.False(t, pipeline.OnLocationUpdate(ctx, taipei101, time.Time{}))
	clock.now = clock.now.Add(3 * time.Second)
	assert.True(t, pipeline.OnLocationUpdate(ctx, taipei101, time.Time{}))

	pipeline.Wait()
}

func TestLocationPipeline_OnLocationUpdate_FetchFailureKeepsRegions(t *testing.T) {
	clock := &fakeClock{now: at(2, 12)}
	pipeline, fetcher, geofence := createTestLocationPipeline(t, clock)

	fetcher.EXPECT().FetchNearby(mock.Anything, taipei101).Return(nil, errors.New("status 503")).Once()

	assert.True(t, pipeline.OnLocationUpdate(context.Background(), taipei101, clock.Now()))
	pipeline.Wait()

	geofence.AssertNotCalled(t, "Reconcile", mock.Anything, mock.Anything)
}

func TestLocationPipeline_OnLocationUpdate_FetchOutlivesCaller(t *testing.T) {
	clock := &fakeClock{now: at(2, 12)}
	pipeline, fetcher, geofence := createTestLocationPipeline(t, clock)

	ctx, cancel := context.WithCancel(context.Background())

	fetcher.EXPECT().
		FetchNearby(mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil }), taipei101).
		Return(nil, nil).
		Once()
	geofence.EXPECT().Reconcile(mock.Anything, mock.Anything).Return(nil, nil).Once()

	cancel()
	assert.True(t, pipeline.OnLocationUpdate(ctx, taipei101, clock.Now()))
	pipeline.Wait()
}

func TestLocationPipeline_SetEnabled(t *testing.T) {
	clock := &fakeClock{now: at(2, 12)}
	pipeline, fetcher, geofence := createTestLocationPipeline(t, clock)
	ctx := context.Background()

	pipeline.SetEnabled(false)
	assert.False(t, pipeline.OnLocationUpdate(ctx, taipei101, clock.Now()))
	fetcher.AssertNotCalled(t, "FetchNearby", mock.Anything, mock.Anything)

	fetcher.EXPECT().FetchNearby(mock.Anything, taipei101).Return(nil, nil).Once()
	geofence.EXPECT().Reconcile(mock.Anything, mock.Anything).Return(nil, nil).Once()

	// A rejected fix while disabled does not move the watermark.
	pipeline.SetEnabled(true)
	assert.True(t, pipeline.OnLocationUpdate(ctx, taipei101, clock.Now()))
	pipeline.Wait()
}
