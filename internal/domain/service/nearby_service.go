package service

import (
	"context"

	"engage/internal/domain/entity"
)

// NearbyStoreFetcher retrieves the stores around a coordinate, nearest first
type NearbyStoreFetcher interface {
	FetchNearby(ctx context.Context, coordinate entity.Coordinate) ([]*entity.Store, error)
}
