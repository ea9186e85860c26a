package nearby

import (
	"context"
	"fmt"
	"math"
	"time"

	"engage/internal/domain/entity"
	"engage/internal/domain/service"

	"github.com/patrickmn/go-cache"
)

// cellSize in degrees, about 110 m of latitude
const cellSize = 0.001

type cachedFetcher struct {
	next  service.NearbyStoreFetcher
	cache *cache.Cache
}

// NewCachedFetcher memoizes successful fetches per ~100 m cell for ttl
func NewCachedFetcher(next service.NearbyStoreFetcher, ttl time.Duration) service.NearbyStoreFetcher {
	return &cachedFetcher{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (f *cachedFetcher) FetchNearby(ctx context.Context, coordinate entity.Coordinate) ([]*entity.Store, error) {
	key := cellKey(coordinate)

	if cached, ok := f.cache.Get(key); ok {
		stores := append([]*entity.Store(nil), cached.([]*entity.Store)...)
		SortByDistance(coordinate, stores)

		return stores, nil
	}

	stores, err := f.next.FetchNearby(ctx, coordinate)
	if err != nil {
		return nil, err
	}

	f.cache.SetDefault(key, append([]*entity.Store(nil), stores...))

	return stores, nil
}

func cellKey(coordinate entity.Coordinate) string {
	return fmt.Sprintf("%d:%d",
		int64(math.Floor(coordinate.Latitude/cellSize)),
		int64(math.Floor(coordinate.Longitude/cellSize)),
	)
}
