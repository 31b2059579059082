package push

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"huddle/internal/domain/service"
	mockSvc "huddle/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func alertMessage() *service.PushMessage {
	return &service.PushMessage{
		Type:     service.PushTypeAlert,
		Alert:    &service.Alert{Title: "打麻將", Body: "缺一腳"},
		Priority: service.PriorityHigh,
	}
}

func TestRetrier_Send_FirstAttemptSucceeds(t *testing.T) {
	transport := mockSvc.NewMockPushTransport(t)
	retrier := NewRetrier(transport, 2, time.Millisecond, false, newTestLogger())

	ctx := context.Background()
	msg := alertMessage()

	transport.EXPECT().
		Send(ctx, "token-1", msg, service.PathDefault).
		Return(&service.DeliveryOutcome{Delivered: true, Path: service.PathDefault}, nil)

	outcome, err := retrier.Send(ctx, "token-1", msg)

	require.NoError(t, err)
	assert.True(t, outcome.Delivered)
	assert.Equal(t, 1, outcome.Attempts)
}

// A transient failure with fallback enabled retries on the alternate port.
func TestRetrier_Send_FallbackTogglesPath(t *testing.T) {
	transport := mockSvc.NewMockPushTransport(t)
	retrier := NewRetrier(transport, 2, time.Millisecond, true, newTestLogger())

	ctx := context.Background()
	msg := alertMessage()

	transport.EXPECT().
		Send(ctx, "token-1", msg, service.PathDefault).
		Return(nil, errors.New("connection reset")).
		Once()
	transport.EXPECT().
		Send(ctx, "token-1", msg, service.PathAlternate).
		Return(&service.DeliveryOutcome{Delivered: true, Path: service.PathAlternate}, nil).
		Once()

	outcome, err := retrier.Send(ctx, "token-1", msg)

	require.NoError(t, err)
	assert.True(t, outcome.Delivered)
	assert.Equal(t, 2, outcome.Attempts)
	assert.Equal(t, service.PathAlternate, outcome.Path)
}

// Without fallback every attempt stays on the default path.
func TestRetrier_Send_NoFallbackKeepsPath(t *testing.T) {
	transport := mockSvc.NewMockPushTransport(t)
	retrier := NewRetrier(transport, 1, time.Millisecond, false, newTestLogger())

	ctx := context.Background()
	msg := alertMessage()

	transport.EXPECT().
		Send(ctx, "token-1", msg, service.PathDefault).
		Return(nil, errors.New("connection reset")).
		Once()
	transport.EXPECT().
		Send(ctx, "token-1", msg, service.PathDefault).
		Return(&service.DeliveryOutcome{Delivered: true, Path: service.PathDefault}, nil).
		Once()

	outcome, err := retrier.Send(ctx, "token-1", msg)

	require.NoError(t, err)
	assert.True(t, outcome.Delivered)
}

// A spent budget becomes a terminal network failure, not an error.
func TestRetrier_Send_BudgetExhausted(t *testing.T) {
	transport := mockSvc.NewMockPushTransport(t)
	retrier := NewRetrier(transport, 2, time.Millisecond, false, newTestLogger())

	ctx := context.Background()
	msg := alertMessage()

	transport.EXPECT().
		Send(ctx, "token-1", msg, service.PathDefault).
		Return(nil, errors.New("connection reset")).
		Times(3)

	outcome, err := retrier.Send(ctx, "token-1", msg)

	require.NoError(t, err)
	assert.False(t, outcome.Delivered)
	assert.Equal(t, service.FailureNetwork, outcome.Class)
	assert.Equal(t, 3, outcome.Attempts)
}

// Gateway rejections are terminal and never consume the retry budget.
func TestRetrier_Send_RejectionPassesThrough(t *testing.T) {
	transport := mockSvc.NewMockPushTransport(t)
	retrier := NewRetrier(transport, 2, time.Millisecond, false, newTestLogger())

	ctx := context.Background()
	msg := alertMessage()

	transport.EXPECT().
		Send(ctx, "token-1", msg, service.PathDefault).
		Return(&service.DeliveryOutcome{
			Class:   service.FailureRejected,
			Reason:  "Unregistered",
			Invalid: true,
		}, nil).
		Once()

	outcome, err := retrier.Send(ctx, "token-1", msg)

	require.NoError(t, err)
	assert.Equal(t, service.FailureRejected, outcome.Class)
	assert.True(t, outcome.Invalid)
	assert.Equal(t, 1, outcome.Attempts)
}

func TestRetrier_Send_CancelledWhileWaiting(t *testing.T) {
	transport := mockSvc.NewMockPushTransport(t)
	retrier := NewRetrier(transport, 2, time.Minute, false, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	msg := alertMessage()

	transport.EXPECT().
		Send(mock.Anything, "token-1", msg, service.PathDefault).
		Run(func(ctx context.Context, deviceToken string, msg *service.PushMessage, path service.DeliveryPath) {
			cancel()
		}).
		Return(nil, errors.New("connection reset")).
		Once()

	outcome, err := retrier.Send(ctx, "token-1", msg)

	assert.Error(t, err)
	assert.Nil(t, outcome)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewRetrier_Defaults(t *testing.T) {
	transport := mockSvc.NewMockPushTransport(t)
	retrier := NewRetrier(transport, -1, 0, false, newTestLogger())

	assert.Equal(t, DefaultMaxRetries, retrier.maxRetries)
	assert.Equal(t, DefaultRetryDelay, retrier.delay)
}
