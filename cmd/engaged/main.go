package main

import (
	"context"
	"log/slog"
	"os"

	"engage/config"
	"engage/internal/delivery"
	"engage/internal/delivery/http"
	"engage/internal/delivery/http/router/handler"
	"engage/internal/infra/geofence"
	logs "engage/internal/infra/log"
	"engage/internal/infra/metrics"
	"engage/internal/infra/nearby"
	"engage/internal/infra/notification"
	"engage/internal/infra/persistence/bucket"
	"engage/internal/infra/pubsub"
	"engage/internal/usecase"
	"engage/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type startEngineParams struct {
	fx.In
	fx.Lifecycle

	Logger   *slog.Logger
	Engine   usecase.EngagementUsecase
	Geofence usecase.GeofenceUsecase
	Pipeline usecase.LocationPipeline
}

func main() {
	fx.New(
		injectInfra(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startEngine,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		metrics.Module,
		bucket.Module,
		nearby.Module,
		geofence.Module,
		notification.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRateLimiter,
			impl.NewNotificationIssuer,
			impl.NewGeofenceService,
			impl.NewLocationPipeline,
			impl.NewEngagementService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEngagementHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startEngine consumes region monitor callbacks for the lifetime of the process
func startEngine(params startEngineParams) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				params.Engine.Run(ctx)
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			params.Pipeline.SetEnabled(false)
			params.Pipeline.Wait()
			params.Geofence.StopAll(stopCtx)

			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				return stopCtx.Err()
			}

			params.Logger.Info("Engagement engine stopped")

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
