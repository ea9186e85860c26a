package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"engage/internal/domain/entity"
	"engage/internal/domain/service"
	"engage/internal/usecase"
)

const (
	defaultNotificationTitle = "Nearby offer"
	defaultNotificationBody  = "Check out %s"
)

type notificationIssuer struct {
	logger      *slog.Logger
	rateLimiter usecase.RateLimiter
	notifier    service.LocalNotifier
	metrics     service.MetricsRecorder
	permitted   atomic.Bool
}

// NewNotificationIssuer creates a notification issuer; notifications are permitted until told otherwise
func NewNotificationIssuer(
	logger *slog.Logger,
	rateLimiter usecase.RateLimiter,
	notifier service.LocalNotifier,
	metrics service.MetricsRecorder,
) usecase.NotificationIssuer {
	issuer := &notificationIssuer{
		logger:      logger,
		rateLimiter: rateLimiter,
		notifier:    notifier,
		metrics:     metrics,
	}
	issuer.permitted.Store(true)

	return issuer
}

// SetPermission records the user's notification permission
func (i *notificationIssuer) SetPermission(granted bool) {
	i.permitted.Store(granted)
}

// Permitted reports whether notifications may be issued
func (i *notificationIssuer) Permitted() bool {
	return i.permitted.Load()
}

// Issue submits a notification for the store when the rate limiter allows it.
// The slot is spent even when submission fails.
func (i *notificationIssuer) Issue(ctx context.Context, store *entity.Store) bool {
	if !i.permitted.Load() {
		i.metrics.NotificationSuppressed(service.SuppressedPermissionDenied)

		return false
	}

	if !i.rateLimiter.CanNotify(store) {
		i.metrics.NotificationSuppressed(service.SuppressedRateLimited)

		return false
	}

	notification := buildNotification(store)
	if err := i.notifier.Notify(ctx, notification); err != nil {
		i.metrics.NotificationDeliveryFailed()
		i.logger.Warn("Failed to submit notification",
			slog.String("store_id", store.ID),
			slog.Any("error", err),
		)
	} else {
		i.metrics.NotificationIssued()
		i.logger.Info("Notification issued",
			slog.String("store_id", store.ID),
			slog.String("merchant_id", store.MerchantID),
		)
	}

	i.rateLimiter.RecordNotification(ctx, store)

	return true
}

func buildNotification(store *entity.Store) *entity.Notification {
	title := store.OfferTitle
	if title == "" {
		title = defaultNotificationTitle
	}

	body := store.OfferDescription
	if body == "" {
		body = fmt.Sprintf(defaultNotificationBody, store.Name)
	}

	return &entity.Notification{
		Title: title,
		Body:  body,
		Data: map[string]string{
			"store_id":    store.ID,
			"merchant_id": store.MerchantID,
			"latitude":    fmt.Sprintf("%f", store.Latitude),
			"longitude":   fmt.Sprintf("%f", store.Longitude),
		},
	}
}
