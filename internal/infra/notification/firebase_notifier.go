package notification

import (
	"context"
	"log/slog"

	"engage/internal/domain/entity"
	"engage/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// messageSender is the part of the Firebase messaging client the notifier uses
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseNotifier struct {
	sender messageSender
	token  string
	logger *slog.Logger
}

// NewFirebaseNotifier delivers notifications to a single registered device token
func NewFirebaseNotifier(ctx context.Context, credentialsPath, deviceToken string, logger *slog.Logger) (service.LocalNotifier, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseNotifier{sender: client, token: deviceToken, logger: logger}, nil
}

// Notify sends the notification to the device
func (n *firebaseNotifier) Notify(ctx context.Context, notification *entity.Notification) error {
	messageID, err := n.sender.Send(ctx, &messaging.Message{
		Token: n.token,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Data: notification.Data,
	})
	if err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return errors.Wrap(err, "device token rejected")
		}

		return errors.Wrap(err, "failed to send notification")
	}

	n.logger.Debug("Notification sent", slog.String("message_id", messageID))

	return nil
}
