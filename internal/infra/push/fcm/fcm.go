// Package fcm delivers push notifications to Android devices through
// Firebase Cloud Messaging.
package fcm

import (
	"context"

	"huddle/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// messageSender is the subset of messaging.Client used by the
// transport, extracted so tests can substitute a fake.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// Transport sends pushes through FCM. FCM fronts a single HTTPS
// endpoint, so the delivery path parameter is accepted and ignored.
type Transport struct {
	client messageSender
}

// NewTransport initializes the Firebase app and messaging client.
func NewTransport(ctx context.Context, credentialsPath string) (*Transport, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &Transport{client: client}, nil
}

// Send delivers one push to one registration token. Classification
// mirrors the APNs transport: unreachable gateway is an error, invalid
// tokens are flagged for removal, everything else is a plain rejection.
func (t *Transport) Send(ctx context.Context, deviceToken string, msg *service.PushMessage, path service.DeliveryPath) (*service.DeliveryOutcome, error) {
	if deviceToken == "" {
		return &service.DeliveryOutcome{
			Class:  service.FailureValidation,
			Reason: "device token is empty",
			Path:   path,
		}, nil
	}
	if msg.Type == service.PushTypeAlert && msg.Alert == nil {
		return &service.DeliveryOutcome{
			Class:  service.FailureValidation,
			Reason: "alert push requires an alert",
			Path:   path,
		}, nil
	}

	message := &messaging.Message{
		Token: deviceToken,
		Data:  msg.Data,
		Android: &messaging.AndroidConfig{
			Priority:    androidPriority(msg),
			CollapseKey: msg.CollapseID,
		},
	}
	if msg.Alert != nil {
		message.Notification = &messaging.Notification{
			Title: msg.Alert.Title,
			Body:  msg.Alert.Body,
		}
	}

	if _, err := t.client.Send(ctx, message); err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return &service.DeliveryOutcome{
				Class:   service.FailureRejected,
				Reason:  err.Error(),
				Invalid: true,
				Path:    path,
			}, nil
		}
		if messaging.IsUnavailable(err) || messaging.IsInternal(err) {
			return nil, errors.Wrap(err, "failed to reach fcm gateway")
		}

		return &service.DeliveryOutcome{
			Class:  service.FailureRejected,
			Reason: err.Error(),
			Path:   path,
		}, nil
	}

	return &service.DeliveryOutcome{
		Delivered: true,
		Path:      path,
	}, nil
}

func androidPriority(msg *service.PushMessage) string {
	if msg.Type == service.PushTypeBackground || msg.Priority == service.PriorityLow {
		return "normal"
	}

	return "high"
}
