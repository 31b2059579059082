// Package apns delivers push notifications through the Apple Push
// Notification service HTTP/2 gateway.
package apns

import (
	"context"
	"encoding/json"

	"huddle/config"
	"huddle/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sideshow/apns2"
	"github.com/sideshow/apns2/payload"
)

const (
	// maxPayloadBytes is the gateway limit for alert and background
	// pushes. VoIP pushes get 5120 but this service never sends them.
	maxPayloadBytes = 4096

	// maxCollapseIDBytes is the gateway limit for the apns-collapse-id header.
	maxCollapseIDBytes = 64
)

// gatewayClient is the subset of apns2.Client used by the transport,
// extracted so tests can substitute a fake gateway.
type gatewayClient interface {
	PushWithContext(ctx apns2.Context, n *apns2.Notification) (*apns2.Response, error)
}

// Transport sends pushes to APNs over two HTTPS paths that share one
// provider token: the default path on 443 and an alternate on 2197 for
// networks that block 443 outbound.
type Transport struct {
	topic     string
	defaultGW gatewayClient
	alternate gatewayClient
}

// NewTransport builds APNs clients for both delivery paths against the
// production or sandbox gateway.
func NewTransport(cfg *config.APNsConfig, creds *Credentials) (*Transport, error) {
	if cfg == nil {
		return nil, errors.New("apns config is required")
	}
	if cfg.Topic == "" {
		return nil, errors.New("apns topic is required")
	}

	host := apns2.HostProduction
	if cfg.Sandbox {
		host = apns2.HostDevelopment
	}

	defaultClient := apns2.NewTokenClient(creds.Token())
	defaultClient.Host = host

	alternateClient := apns2.NewTokenClient(creds.Token())
	alternateClient.Host = host + ":2197"

	return &Transport{
		topic:     cfg.Topic,
		defaultGW: defaultClient,
		alternate: alternateClient,
	}, nil
}

// Send delivers one push to one device token over the given path.
//
// A non-nil error means the gateway was unreachable and the caller may
// retry. Messages that fail local validation or are rejected by the
// gateway come back as a classified outcome with a nil error.
func (t *Transport) Send(ctx context.Context, deviceToken string, msg *service.PushMessage, path service.DeliveryPath) (*service.DeliveryOutcome, error) {
	notification, outcome := t.buildNotification(deviceToken, msg, path)
	if outcome != nil {
		return outcome, nil
	}

	gateway := t.defaultGW
	if path == service.PathAlternate {
		gateway = t.alternate
	}

	res, err := gateway.PushWithContext(ctx, notification)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reach apns gateway")
	}

	if res.Sent() {
		return &service.DeliveryOutcome{
			Delivered: true,
			ApnsID:    res.ApnsID,
			Path:      path,
		}, nil
	}

	return &service.DeliveryOutcome{
		Class:   service.FailureRejected,
		Reason:  res.Reason,
		Invalid: isEndpointInvalid(res.Reason),
		ApnsID:  res.ApnsID,
		Path:    path,
	}, nil
}

// buildNotification validates the message and assembles the wire
// notification. A non-nil outcome means validation failed and nothing
// was sent.
func (t *Transport) buildNotification(deviceToken string, msg *service.PushMessage, path service.DeliveryPath) (*apns2.Notification, *service.DeliveryOutcome) {
	fail := func(reason string) (*apns2.Notification, *service.DeliveryOutcome) {
		return nil, &service.DeliveryOutcome{
			Class:  service.FailureValidation,
			Reason: reason,
			Path:   path,
		}
	}

	if deviceToken == "" {
		return fail("device token is empty")
	}
	if len(msg.CollapseID) > maxCollapseIDBytes {
		return fail("collapse id exceeds 64 bytes")
	}

	p := payload.NewPayload()

	switch msg.Type {
	case service.PushTypeAlert:
		if msg.Alert == nil {
			return fail("alert push requires an alert")
		}
		p.AlertTitle(msg.Alert.Title)
		if msg.Alert.Subtitle != "" {
			p.AlertSubtitle(msg.Alert.Subtitle)
		}
		p.AlertBody(msg.Alert.Body)
		if msg.Sound != "" {
			p.Sound(msg.Sound)
		}
		if msg.Badge != nil {
			p.Badge(*msg.Badge)
		}

	case service.PushTypeBackground:
		if msg.Alert != nil {
			return fail("background push must not carry an alert")
		}
		if msg.Priority == service.PriorityHigh {
			return fail("background push must use low priority")
		}
		p.ContentAvailable()

	default:
		return fail("unknown push type: " + string(msg.Type))
	}

	for key, value := range msg.Data {
		p.Custom(key, value)
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return fail("payload is not serializable: " + err.Error())
	}
	if len(raw) > maxPayloadBytes {
		return fail("payload exceeds gateway size limit")
	}

	notification := &apns2.Notification{
		DeviceToken: deviceToken,
		Topic:       t.topic,
		CollapseID:  msg.CollapseID,
		Expiration:  msg.Expiration,
		Payload:     raw,
	}

	switch msg.Type {
	case service.PushTypeBackground:
		// Background pushes must be sent at low priority or the
		// gateway reports an error to the provider.
		notification.PushType = apns2.PushTypeBackground
		notification.Priority = apns2.PriorityLow
	default:
		notification.PushType = apns2.PushTypeAlert
		notification.Priority = apns2.PriorityHigh
		if msg.Priority == service.PriorityLow {
			notification.Priority = apns2.PriorityLow
		}
	}

	return notification, nil
}

// isEndpointInvalid reports whether a gateway rejection means the
// device token will never work again.
func isEndpointInvalid(reason string) bool {
	switch reason {
	case apns2.ReasonBadDeviceToken,
		apns2.ReasonUnregistered,
		apns2.ReasonDeviceTokenNotForTopic:
		return true
	default:
		return false
	}
}
