package service

// Suppression reasons reported to MetricsRecorder
const (
	SuppressedRateLimited      = "rate_limited"
	SuppressedPermissionDenied = "permission_denied"
)

// Location fix outcomes reported to MetricsRecorder
const (
	LocationAccepted  = "accepted"
	LocationDebounced = "debounced"
	LocationDisabled  = "disabled"
)

// MetricsRecorder collects engagement engine counters
type MetricsRecorder interface {
	NotificationIssued()
	NotificationSuppressed(reason string)
	NotificationDeliveryFailed()
	LocationFix(result string)
	NearbyFetch(success bool)
	RegionsMonitored(count int)
	RegionRegistrationFailed()
	RegionEntryReceived(notified bool)
}
