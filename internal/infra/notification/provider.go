package notification

import (
	"context"
	"log/slog"

	"engage/config"
	"engage/internal/domain/service"

	"go.uber.org/fx"
)

// NotifierParams holds dependencies for LocalNotifier, injected by Fx
type NotifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewLocalNotifier uses Firebase when credentials and a device token are configured
func NewLocalNotifier(params NotifierParams) (service.LocalNotifier, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" || cfg.DeviceToken == "" {
		params.Logger.Info("Firebase not configured, notifications are logged only")

		return &logNotifier{logger: params.Logger}, nil
	}

	params.Logger.Info("Using Firebase notifier", slog.String("project_id", cfg.ProjectID))

	return NewFirebaseNotifier(params.Ctx, cfg.CredentialsPath, cfg.DeviceToken, params.Logger)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewLocalNotifier),
)
