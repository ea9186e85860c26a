package service

import (
	"context"
	"time"
)

// RegionEntryEvent is forwarded to the host application when the device enters a monitored store region
type RegionEntryEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	StoreID    string    `json:"store_id"`
	MerchantID string    `json:"merchant_id"`
	Name       string    `json:"name"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	OfferTitle string    `json:"offer_title,omitempty"`
	Notified   bool      `json:"notified"` // Whether a notification slot was spent
	EnteredAt  time.Time `json:"entered_at"`
}

// EventPublisher defines the interface for publishing events to the host application
type EventPublisher interface {
	// PublishRegionEntryEvent publishes a region entry event
	PublishRegionEntryEvent(ctx context.Context, event *RegionEntryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
