package notification

import (
	"context"
	"log/slog"

	"engage/internal/domain/entity"
)

// logNotifier writes notifications to the log when no push channel is configured
type logNotifier struct {
	logger *slog.Logger
}

func (n *logNotifier) Notify(_ context.Context, notification *entity.Notification) error {
	n.logger.Info("Local notification",
		slog.String("title", notification.Title),
		slog.String("body", notification.Body),
		slog.Any("data", notification.Data),
	)

	return nil
}
