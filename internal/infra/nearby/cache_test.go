package nearby

import (
	"context"
	"testing"
	"time"

	"engage/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFetcher struct {
	calls  int
	stores []*entity.Store
	err    error
}

func (f *countingFetcher) FetchNearby(context.Context, entity.Coordinate) ([]*entity.Store, error) {
	f.calls++

	return f.stores, f.err
}

func TestCachedFetcher_SameCellHitsCache(t *testing.T) {
	next := &countingFetcher{stores: []*entity.Store{
		{ID: "a", Latitude: 25.0345, Longitude: 121.5645},
		{ID: "b", Latitude: 25.0339, Longitude: 121.5645},
	}}
	fetcher := NewCachedFetcher(next, time.Minute)
	ctx := context.Background()

	first, err := fetcher.FetchNearby(ctx, entity.Coordinate{Latitude: 25.0344, Longitude: 121.5645})
	require.NoError(t, err)

	// Same cell, closer to b: served from cache and re-ordered for the new position.
	second, err := fetcher.FetchNearby(ctx, entity.Coordinate{Latitude: 25.0341, Longitude: 121.5645})
	require.NoError(t, err)

	assert.Equal(t, 1, next.calls)
	assert.Len(t, first, 2)
	assert.Equal(t, []string{"b", "a"}, []string{second[0].ID, second[1].ID})
}

func TestCachedFetcher_DifferentCellFetches(t *testing.T) {
	next := &countingFetcher{}
	fetcher := NewCachedFetcher(next, time.Minute)
	ctx := context.Background()

	_, _ = fetcher.FetchNearby(ctx, entity.Coordinate{Latitude: 25.0341, Longitude: 121.5645})
	_, _ = fetcher.FetchNearby(ctx, entity.Coordinate{Latitude: 25.0361, Longitude: 121.5645})

	assert.Equal(t, 2, next.calls)
}

func TestCachedFetcher_ErrorsAreNotCached(t *testing.T) {
	next := &countingFetcher{err: errors.New("timeout")}
	fetcher := NewCachedFetcher(next, time.Minute)
	ctx := context.Background()

	_, err := fetcher.FetchNearby(ctx, origin)
	require.Error(t, err)
	_, err = fetcher.FetchNearby(ctx, origin)
	require.Error(t, err)

	assert.Equal(t, 2, next.calls)
}

func TestCellKey(t *testing.T) {
	assert.Equal(t, cellKey(entity.Coordinate{Latitude: 25.03410, Longitude: 121.56451}),
		cellKey(entity.Coordinate{Latitude: 25.03490, Longitude: 121.56499}))
	assert.NotEqual(t, cellKey(entity.Coordinate{Latitude: -0.0005, Longitude: 0}),
		cellKey(entity.Coordinate{Latitude: 0.0005, Longitude: 0}))
}
