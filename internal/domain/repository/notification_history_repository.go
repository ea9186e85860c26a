// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"engage/internal/domain/entity"
)

// ErrHistoryNotFound is returned when no notification history has been persisted yet.
var ErrHistoryNotFound = errors.New("notification history not found")

// NotificationHistoryRepository persists the notification history as one flat list.
type NotificationHistoryRepository interface {
	// LoadHistory returns every persisted record in insertion order.
	LoadHistory(ctx context.Context) ([]entity.NotificationRecord, error)

	// SaveHistory replaces the persisted history with records.
	SaveHistory(ctx context.Context, records []entity.NotificationRecord) error
}
