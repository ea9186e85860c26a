package usecase

import (
	"context"

	"engage/internal/domain/entity"
)

// NotificationIssuer turns a region entry into a rate-limited local notification
type NotificationIssuer interface {
	// Issue notifies about store if permitted; it reports whether a notification slot was spent
	Issue(ctx context.Context, store *entity.Store) bool

	// SetPermission records the user's notification permission
	SetPermission(granted bool)

	// Permitted reports the current notification permission
	Permitted() bool
}
