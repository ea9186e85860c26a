package entity

import (
	"time"
)

// NotificationRecord is one entry of the append-only notification history.
type NotificationRecord struct {
	PointID    string    `json:"point_id"`    // The store the notification was issued for.
	MerchantID string    `json:"merchant_id"` // The merchant of that store.
	Timestamp  time.Time `json:"timestamp"`   // When the notification was issued.
}

// Notification is the content submitted to the local notification surface.
type Notification struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}
