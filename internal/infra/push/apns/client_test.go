package apns

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"huddle/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sideshow/apns2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway captures the notification that would hit the wire and
// answers with a canned response.
type fakeGateway struct {
	response *apns2.Response
	err      error
	pushed   *apns2.Notification
	calls    int
}

func (f *fakeGateway) PushWithContext(_ apns2.Context, n *apns2.Notification) (*apns2.Response, error) {
	f.calls++
	f.pushed = n

	return f.response, f.err
}

func newTestTransport(defaultGW, alternate gatewayClient) *Transport {
	return &Transport{
		topic:     "com.huddle.app",
		defaultGW: defaultGW,
		alternate: alternate,
	}
}

func sentResponse(apnsID string) *apns2.Response {
	return &apns2.Response{StatusCode: apns2.StatusSent, ApnsID: apnsID}
}

func badgePtr(n int) *int { return &n }

func TestTransport_Send_AlertDelivered(t *testing.T) {
	gateway := &fakeGateway{response: sentResponse("apns-id-1")}
	transport := newTestTransport(gateway, &fakeGateway{})

	msg := &service.PushMessage{
		Type:       service.PushTypeAlert,
		Alert:      &service.Alert{Title: "打麻將", Subtitle: "台北", Body: "缺一腳"},
		Sound:      "default",
		Badge:      badgePtr(1),
		CollapseID: "session-1",
		Priority:   service.PriorityHigh,
		Data:       map[string]string{"session_id": "s-1"},
	}

	outcome, err := transport.Send(context.Background(), "device-token", msg, service.PathDefault)

	require.NoError(t, err)
	assert.True(t, outcome.Delivered)
	assert.Equal(t, "apns-id-1", outcome.ApnsID)
	assert.Equal(t, service.PathDefault, outcome.Path)

	require.NotNil(t, gateway.pushed)
	assert.Equal(t, "device-token", gateway.pushed.DeviceToken)
	assert.Equal(t, "com.huddle.app", gateway.pushed.Topic)
	assert.Equal(t, "session-1", gateway.pushed.CollapseID)
	assert.Equal(t, apns2.PushTypeAlert, gateway.pushed.PushType)
	assert.Equal(t, apns2.PriorityHigh, gateway.pushed.Priority)

	var body map[string]any
	require.NoError(t, json.Unmarshal(gateway.pushed.Payload.([]byte), &body))
	aps, ok := body["aps"].(map[string]any)
	require.True(t, ok)
	alert, ok := aps["alert"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "打麻將", alert["title"])
	assert.Equal(t, "缺一腳", alert["body"])
	assert.Equal(t, "s-1", body["session_id"])
}

func TestTransport_Send_AlternatePathUsesSecondGateway(t *testing.T) {
	defaultGW := &fakeGateway{response: sentResponse("unused")}
	alternate := &fakeGateway{response: sentResponse("apns-id-2")}
	transport := newTestTransport(defaultGW, alternate)

	msg := &service.PushMessage{
		Type:  service.PushTypeAlert,
		Alert: &service.Alert{Title: "新的揪團", Body: "Alice 發起了揪團"},
	}

	outcome, err := transport.Send(context.Background(), "device-token", msg, service.PathAlternate)

	require.NoError(t, err)
	assert.True(t, outcome.Delivered)
	assert.Equal(t, service.PathAlternate, outcome.Path)
	assert.Equal(t, 0, defaultGW.calls)
	assert.Equal(t, 1, alternate.calls)
}

func TestTransport_Send_BackgroundLowPriority(t *testing.T) {
	gateway := &fakeGateway{response: sentResponse("apns-id-3")}
	transport := newTestTransport(gateway, &fakeGateway{})

	msg := &service.PushMessage{
		Type: service.PushTypeBackground,
		Data: map[string]string{"session_id": "s-1"},
	}

	_, err := transport.Send(context.Background(), "device-token", msg, service.PathDefault)

	require.NoError(t, err)
	require.NotNil(t, gateway.pushed)
	assert.Equal(t, apns2.PushTypeBackground, gateway.pushed.PushType)
	assert.Equal(t, apns2.PriorityLow, gateway.pushed.Priority)

	var body map[string]any
	require.NoError(t, json.Unmarshal(gateway.pushed.Payload.([]byte), &body))
	aps, ok := body["aps"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, aps["content-available"])
}

func TestTransport_Send_GatewayUnreachable(t *testing.T) {
	gateway := &fakeGateway{err: errors.New("connection refused")}
	transport := newTestTransport(gateway, &fakeGateway{})

	msg := &service.PushMessage{
		Type:  service.PushTypeAlert,
		Alert: &service.Alert{Title: "打麻將", Body: "缺一腳"},
	}

	outcome, err := transport.Send(context.Background(), "device-token", msg, service.PathDefault)

	assert.Error(t, err)
	assert.Nil(t, outcome)
}

func TestTransport_Send_RejectionClassification(t *testing.T) {
	tests := []struct {
		name        string
		reason      string
		wantInvalid bool
	}{
		{name: "unregistered marks token invalid", reason: apns2.ReasonUnregistered, wantInvalid: true},
		{name: "bad device token marks token invalid", reason: apns2.ReasonBadDeviceToken, wantInvalid: true},
		{name: "wrong topic marks token invalid", reason: apns2.ReasonDeviceTokenNotForTopic, wantInvalid: true},
		{name: "throttled keeps token", reason: apns2.ReasonTooManyRequests, wantInvalid: false},
		{name: "oversize keeps token", reason: apns2.ReasonPayloadTooLarge, wantInvalid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &fakeGateway{response: &apns2.Response{
				StatusCode: 400,
				Reason:     tt.reason,
				ApnsID:     "apns-id-4",
			}}
			transport := newTestTransport(gateway, &fakeGateway{})

			msg := &service.PushMessage{
				Type:  service.PushTypeAlert,
				Alert: &service.Alert{Title: "打麻將", Body: "缺一腳"},
			}

			outcome, err := transport.Send(context.Background(), "device-token", msg, service.PathDefault)

			require.NoError(t, err)
			assert.False(t, outcome.Delivered)
			assert.Equal(t, service.FailureRejected, outcome.Class)
			assert.Equal(t, tt.reason, outcome.Reason)
			assert.Equal(t, tt.wantInvalid, outcome.Invalid)
		})
	}
}

func TestTransport_Send_ValidationFailures(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		msg        *service.PushMessage
		wantReason string
	}{
		{
			name:  "empty device token",
			token: "",
			msg: &service.PushMessage{
				Type:  service.PushTypeAlert,
				Alert: &service.Alert{Title: "打麻將", Body: "缺一腳"},
			},
			wantReason: "device token is empty",
		},
		{
			name:  "collapse id too long",
			token: "device-token",
			msg: &service.PushMessage{
				Type:       service.PushTypeAlert,
				Alert:      &service.Alert{Title: "打麻將", Body: "缺一腳"},
				CollapseID: strings.Repeat("x", 65),
			},
			wantReason: "collapse id exceeds 64 bytes",
		},
		{
			name:       "alert push without alert",
			token:      "device-token",
			msg:        &service.PushMessage{Type: service.PushTypeAlert},
			wantReason: "alert push requires an alert",
		},
		{
			name:  "background push with alert",
			token: "device-token",
			msg: &service.PushMessage{
				Type:  service.PushTypeBackground,
				Alert: &service.Alert{Title: "打麻將"},
			},
			wantReason: "background push must not carry an alert",
		},
		{
			name:  "background push with immediate priority",
			token: "device-token",
			msg: &service.PushMessage{
				Type:     service.PushTypeBackground,
				Priority: service.PriorityHigh,
			},
			wantReason: "background push must use low priority",
		},
		{
			name:  "unknown push type",
			token: "device-token",
			msg: &service.PushMessage{
				Type: service.PushType("voip"),
			},
			wantReason: "unknown push type: voip",
		},
		{
			name:  "payload over gateway limit",
			token: "device-token",
			msg: &service.PushMessage{
				Type:  service.PushTypeAlert,
				Alert: &service.Alert{Title: "打麻將", Body: strings.Repeat("好", 2000)},
			},
			wantReason: "payload exceeds gateway size limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &fakeGateway{response: sentResponse("unused")}
			transport := newTestTransport(gateway, &fakeGateway{})

			outcome, err := transport.Send(context.Background(), tt.token, tt.msg, service.PathDefault)

			require.NoError(t, err)
			assert.Equal(t, service.FailureValidation, outcome.Class)
			assert.Equal(t, tt.wantReason, outcome.Reason)
			assert.Equal(t, 0, gateway.calls)
		})
	}
}
