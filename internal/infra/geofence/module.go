package geofence

import (
	"engage/internal/domain/service"

	"go.uber.org/fx"
)

// Module provides the software monitor as the region monitor and as a location observer
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewMonitor,
		func(m *Monitor) service.RegionMonitor { return m },
		fx.Annotate(
			func(m *Monitor) service.LocationObserver { return m },
			fx.ResultTags(`group:"location_observers"`),
		),
	),
)
