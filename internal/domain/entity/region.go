package entity

// MonitoredRegion is a store promoted to an actively watched circular region.
type MonitoredRegion struct {
	ID            string     `json:"id"`              // The store ID the region was created for.
	Center        Coordinate `json:"center"`          // Center of the region.
	Radius        float64    `json:"radius"`          // Radius in meters.
	NotifyOnEntry bool       `json:"notify_on_entry"` // Whether entry transitions are reported.
	NotifyOnExit  bool       `json:"notify_on_exit"`  // Whether exit transitions are reported.
}

// NewMonitoredRegion builds an entry-only region around the store.
func NewMonitoredRegion(store *Store, radius float64) MonitoredRegion {
	return MonitoredRegion{
		ID:            store.ID,
		Center:        store.Coordinate(),
		Radius:        radius,
		NotifyOnEntry: true,
		NotifyOnExit:  false,
	}
}

// ContainmentState describes whether the device is inside a region.
type ContainmentState string

const (
	ContainmentUnknown ContainmentState = "unknown"
	ContainmentInside  ContainmentState = "inside"
	ContainmentOutside ContainmentState = "outside"
)
