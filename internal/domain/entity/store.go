// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/paulmach/orb"
)

// Store is a point of interest that can be promoted to a monitored region.
type Store struct {
	ID               string  `json:"id" validate:"required"`          // Unique identifier of the store.
	MerchantID       string  `json:"merchant_id" validate:"required"` // The merchant (brand) the store belongs to.
	Name             string  `json:"name" validate:"required"`        // Display name of the store.
	Latitude         float64 `json:"latitude" validate:"latitude"`    // The geographic latitude of the store.
	Longitude        float64 `json:"longitude" validate:"longitude"`  // The geographic longitude of the store.
	OfferTitle       string  `json:"offer_title,omitempty"`           // Optional headline of the current offer.
	OfferDescription string  `json:"offer_description,omitempty"`     // Optional body of the current offer.
}

// Coordinate returns the store position.
func (s *Store) Coordinate() Coordinate {
	return Coordinate{Latitude: s.Latitude, Longitude: s.Longitude}
}

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point converts the coordinate to an orb point (lng, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Valid reports whether the coordinate lies within WGS84 bounds.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}
