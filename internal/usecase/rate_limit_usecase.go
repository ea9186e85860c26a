package usecase

import (
	"context"

	"engage/internal/domain/entity"
)

// MerchantWindowStats summarizes the history counted by the rate limiter
type MerchantWindowStats struct {
	Today         int `json:"today"`
	Week          int `json:"week"`
	Month         int `json:"month"`
	MerchantWeek  int `json:"merchant_week"`
	MerchantMonth int `json:"merchant_month"`

	// Whole hours since the merchant's latest notification, -1 when there is none
	HoursSinceLast int `json:"hours_since_last"`
}

// RateLimiter decides whether a store notification may be issued now
type RateLimiter interface {
	// CanNotify reports whether a notification for store is allowed at the current instant
	CanNotify(store *entity.Store) bool

	// RecordNotification appends a record for store and persists the history
	RecordNotification(ctx context.Context, store *entity.Store)

	// History returns a copy of the working notification history
	History() []entity.NotificationRecord

	// Stats returns the window counts for the merchant at the current instant
	Stats(merchantID string) MerchantWindowStats
}
