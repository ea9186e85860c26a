package usecase

import (
	"context"
	"time"

	"engage/internal/domain/entity"
)

// EngagementStatus describes the engine state exposed to the host application
type EngagementStatus struct {
	Enabled              bool                     `json:"enabled"`
	NotificationsAllowed bool                     `json:"notifications_allowed"`
	Regions              []entity.MonitoredRegion `json:"regions"`
}

// EngagementUsecase is the entry point of the engagement engine
type EngagementUsecase interface {
	// Run drains the region monitor callbacks until ctx is cancelled
	Run(ctx context.Context)

	// OnLocationUpdate feeds a raw location fix into the engine
	OnLocationUpdate(ctx context.Context, coordinate entity.Coordinate, timestamp time.Time) bool

	// Enable turns location-triggered engagement on
	Enable()

	// Disable turns engagement off and stops monitoring every region
	Disable(ctx context.Context)

	// SetNotificationPermission records the notification permission signal
	SetNotificationPermission(granted bool)

	// Status returns the engine state
	Status() EngagementStatus

	// History returns the notification history
	History() []entity.NotificationRecord

	// MerchantStats returns the rate limit window counts for one merchant
	MerchantStats(merchantID string) MerchantWindowStats
}
