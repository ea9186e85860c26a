// Package metrics exposes the engagement engine counters through Prometheus.
package metrics

import (
	"strconv"

	"engage/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

const namespace = "engage"

// Metrics holds the engagement engine instruments
type Metrics struct {
	notificationsIssued     prometheus.Counter
	notificationsSuppressed *prometheus.CounterVec
	deliveryFailures        prometheus.Counter
	locationFixes           *prometheus.CounterVec
	nearbyFetches           *prometheus.CounterVec
	regionsMonitored        prometheus.Gauge
	registrationFailures    prometheus.Counter
	entriesReceived         *prometheus.CounterVec
}

// New creates the instruments and registers them on registerer
func New(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		notificationsIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_issued_total",
			Help:      "Local notifications submitted to the device",
		}),
		notificationsSuppressed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_suppressed_total",
			Help:      "Region entries that did not produce a notification",
		}, []string{"reason"}),
		deliveryFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_delivery_failures_total",
			Help:      "Notification submissions rejected by the delivery surface",
		}),
		locationFixes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "location_fixes_total",
			Help:      "Location fixes received, by debounce outcome",
		}, []string{"result"}),
		nearbyFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nearby_fetches_total",
			Help:      "Nearby store lookups, by outcome",
		}, []string{"success"}),
		regionsMonitored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "regions_monitored",
			Help:      "Regions currently monitored",
		}),
		registrationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "region_registration_failures_total",
			Help:      "Regions the monitor failed to register",
		}),
		entriesReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "region_entries_received_total",
			Help:      "Region entry events consumed from the push subscription",
		}, []string{"notified"}),
	}

	collectors := []prometheus.Collector{
		m.notificationsIssued,
		m.notificationsSuppressed,
		m.deliveryFailures,
		m.locationFixes,
		m.nearbyFetches,
		m.regionsMonitored,
		m.registrationFailures,
		m.entriesReceived,
	}
	for _, collector := range collectors {
		if err := registerer.Register(collector); err != nil {
			return nil, errors.Wrap(err, "failed to register collector")
		}
	}

	return m, nil
}

// NewRegistry creates the registry served on /metrics, including Go runtime and process collectors
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		func(r *prometheus.Registry) prometheus.Registerer { return r },
		func(r *prometheus.Registry) prometheus.Gatherer { return r },
		fx.Annotate(New, fx.As(new(service.MetricsRecorder))),
	),
)

func (m *Metrics) NotificationIssued() {
	m.notificationsIssued.Inc()
}

func (m *Metrics) NotificationSuppressed(reason string) {
	m.notificationsSuppressed.WithLabelValues(reason).Inc()
}

func (m *Metrics) NotificationDeliveryFailed() {
	m.deliveryFailures.Inc()
}

func (m *Metrics) LocationFix(result string) {
	m.locationFixes.WithLabelValues(result).Inc()
}

func (m *Metrics) NearbyFetch(success bool) {
	m.nearbyFetches.WithLabelValues(strconv.FormatBool(success)).Inc()
}

func (m *Metrics) RegionsMonitored(count int) {
	m.regionsMonitored.Set(float64(count))
}

func (m *Metrics) RegionRegistrationFailed() {
	m.registrationFailures.Inc()
}

func (m *Metrics) RegionEntryReceived(notified bool) {
	m.entriesReceived.WithLabelValues(strconv.FormatBool(notified)).Inc()
}
