package metrics

import (
	"testing"

	"engage/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsEvents(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := New(registry)
	require.NoError(t, err)

	m.NotificationIssued()
	m.NotificationSuppressed(service.SuppressedRateLimited)
	m.NotificationSuppressed(service.SuppressedRateLimited)
	m.LocationFix(service.LocationDebounced)
	m.NearbyFetch(false)
	m.RegionsMonitored(7)
	m.RegionEntryReceived(true)

	assert.InDelta(t, 1, testutil.ToFloat64(m.notificationsIssued), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.notificationsSuppressed.WithLabelValues(service.SuppressedRateLimited)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.locationFixes.WithLabelValues(service.LocationDebounced)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.nearbyFetches.WithLabelValues("false")), 0)
	assert.InDelta(t, 7, testutil.ToFloat64(m.regionsMonitored), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.entriesReceived.WithLabelValues("true")), 0)
}

func TestNew_RejectsDuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := New(registry)
	require.NoError(t, err)

	_, err = New(registry)
	assert.Error(t, err)
}

func TestNewRegistry_ServesRuntimeAndEngineMetrics(t *testing.T) {
	registry := NewRegistry()
	m, err := New(registry)
	require.NoError(t, err)

	m.NotificationIssued()

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, family := range families {
		names[family.GetName()] = true
	}
	assert.True(t, names["go_goroutines"])
	assert.True(t, names["engage_notifications_issued_total"])
}
