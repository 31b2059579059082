package fcm

import (
	"context"
	"testing"

	"huddle/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender captures the message that would hit the wire and answers
// with a canned result.
type fakeSender struct {
	err   error
	sent  *messaging.Message
	calls int
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.calls++
	f.sent = message

	return "projects/huddle/messages/1", f.err
}

func badgePriority(p int) *service.PushMessage {
	return &service.PushMessage{
		Type:     service.PushTypeAlert,
		Alert:    &service.Alert{Title: "打麻將", Body: "缺一腳"},
		Priority: p,
	}
}

func TestTransport_Send_AlertDelivered(t *testing.T) {
	sender := &fakeSender{}
	transport := &Transport{client: sender}

	msg := &service.PushMessage{
		Type:       service.PushTypeAlert,
		Alert:      &service.Alert{Title: "打麻將", Body: "缺一腳"},
		CollapseID: "session-1",
		Priority:   service.PriorityHigh,
		Data:       map[string]string{"session_id": "s-1"},
	}

	outcome, err := transport.Send(context.Background(), "reg-token", msg, service.PathDefault)

	require.NoError(t, err)
	assert.True(t, outcome.Delivered)
	assert.Equal(t, service.PathDefault, outcome.Path)

	require.NotNil(t, sender.sent)
	assert.Equal(t, "reg-token", sender.sent.Token)
	assert.Equal(t, "s-1", sender.sent.Data["session_id"])
	require.NotNil(t, sender.sent.Notification)
	assert.Equal(t, "打麻將", sender.sent.Notification.Title)
	assert.Equal(t, "缺一腳", sender.sent.Notification.Body)
	require.NotNil(t, sender.sent.Android)
	assert.Equal(t, "high", sender.sent.Android.Priority)
	assert.Equal(t, "session-1", sender.sent.Android.CollapseKey)
}

func TestTransport_Send_BackgroundOmitsNotification(t *testing.T) {
	sender := &fakeSender{}
	transport := &Transport{client: sender}

	msg := &service.PushMessage{
		Type: service.PushTypeBackground,
		Data: map[string]string{"session_id": "s-1"},
	}

	outcome, err := transport.Send(context.Background(), "reg-token", msg, service.PathDefault)

	require.NoError(t, err)
	assert.True(t, outcome.Delivered)
	require.NotNil(t, sender.sent)
	assert.Nil(t, sender.sent.Notification)
	assert.Equal(t, "normal", sender.sent.Android.Priority)
}

func TestTransport_Send_ValidationFailures(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		msg        *service.PushMessage
		wantReason string
	}{
		{
			name:       "empty device token",
			token:      "",
			msg:        badgePriority(service.PriorityHigh),
			wantReason: "device token is empty",
		},
		{
			name:       "alert push without alert",
			token:      "reg-token",
			msg:        &service.PushMessage{Type: service.PushTypeAlert},
			wantReason: "alert push requires an alert",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			transport := &Transport{client: sender}

			outcome, err := transport.Send(context.Background(), tt.token, tt.msg, service.PathDefault)

			require.NoError(t, err)
			assert.Equal(t, service.FailureValidation, outcome.Class)
			assert.Equal(t, tt.wantReason, outcome.Reason)
			assert.Equal(t, 0, sender.calls)
		})
	}
}

// Errors that are not classified as transient by the messaging SDK
// come back as terminal rejections with the token kept.
func TestTransport_Send_UnclassifiedErrorRejected(t *testing.T) {
	sender := &fakeSender{err: errors.New("sender id mismatch")}
	transport := &Transport{client: sender}

	outcome, err := transport.Send(context.Background(), "reg-token", badgePriority(service.PriorityHigh), service.PathDefault)

	require.NoError(t, err)
	assert.False(t, outcome.Delivered)
	assert.Equal(t, service.FailureRejected, outcome.Class)
	assert.False(t, outcome.Invalid)
	assert.Equal(t, "sender id mismatch", outcome.Reason)
}

func TestAndroidPriority(t *testing.T) {
	assert.Equal(t, "high", androidPriority(badgePriority(service.PriorityHigh)))
	assert.Equal(t, "normal", androidPriority(badgePriority(service.PriorityLow)))
	assert.Equal(t, "normal", androidPriority(&service.PushMessage{Type: service.PushTypeBackground}))
}
