package service

import (
	"context"

	"engage/internal/domain/entity"
)

// LocalNotifier defines the interface for the immediate-delivery notification surface
type LocalNotifier interface {
	// Notify submits a notification for immediate delivery to the device
	Notify(ctx context.Context, notification *entity.Notification) error
}
