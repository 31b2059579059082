package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/service"
	mockUC "huddle/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockNotificationUsecase) {
	t.Helper()

	mockNotificationUC := mockUC.NewMockNotificationUsecase(t)
	h := &PushHandler{
		verifyPushAuth: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		notificationUC: mockNotificationUC,
	}

	return h, mockNotificationUC
}

func newPushContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/worker/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// envelope wraps a notification event the way the Pub/Sub push endpoint
// receives it: JSON event, base64 data, message envelope.
func envelope(t *testing.T, event *service.NotificationEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(data)
	pushMsg.Message.MessageID = "msg-1"
	pushMsg.Subscription = "projects/huddle/subscriptions/push-worker"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	return string(body)
}

func newSessionEvent() *service.NotificationEvent {
	return &service.NotificationEvent{
		EventID:      "evt-1",
		Type:         service.EventNewSession,
		ActorID:      "11111111-1111-1111-1111-111111111111",
		ActorName:    "小美",
		SessionID:    "22222222-2222-2222-2222-222222222222",
		SessionTitle: "打麻將",
		AudienceIDs:  []string{"33333333-3333-3333-3333-333333333333"},
	}
}

func TestPushHandler_HandlePush_Success(t *testing.T) {
	h, mockNotificationUC := newTestPushHandler(t)
	event := newSessionEvent()

	mockNotificationUC.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(e *service.NotificationEvent) bool {
			return e.EventID == event.EventID && e.Type == event.Type
		})).
		Return(&service.FanoutReport{Delivered: 2, Failed: 1, InvalidTokens: []string{"dead-token"}}, nil)
	mockNotificationUC.EXPECT().
		PurgeInvalidEndpoints(mock.Anything, []string{"dead-token"}).
		Return(nil)

	c, rec := newPushContext(t, envelope(t, event))

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_PurgeFailureStillAcks(t *testing.T) {
	h, mockNotificationUC := newTestPushHandler(t)

	mockNotificationUC.EXPECT().
		Dispatch(mock.Anything, mock.Anything).
		Return(&service.FanoutReport{Delivered: 1, InvalidTokens: []string{"dead-token"}}, nil)
	mockNotificationUC.EXPECT().
		PurgeInvalidEndpoints(mock.Anything, []string{"dead-token"}).
		Return(errors.New("db unavailable"))

	c, rec := newPushContext(t, envelope(t, newSessionEvent()))

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_PermanentErrorAcks(t *testing.T) {
	h, mockNotificationUC := newTestPushHandler(t)

	mockNotificationUC.EXPECT().
		Dispatch(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrEventNotDeliverable, "failed to parse audience user ID: not-a-uuid"))

	c, rec := newPushContext(t, envelope(t, newSessionEvent()))

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	mockNotificationUC.AssertNotCalled(t, "PurgeInvalidEndpoints", mock.Anything, mock.Anything)
}

func TestPushHandler_HandlePush_TransientErrorRequestsRetry(t *testing.T) {
	h, mockNotificationUC := newTestPushHandler(t)

	mockNotificationUC.EXPECT().
		Dispatch(mock.Anything, mock.Anything).
		Return(nil, errors.New("failed to list audience devices: connection refused"))

	c, rec := newPushContext(t, envelope(t, newSessionEvent()))

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_BadBase64(t *testing.T) {
	h, mockNotificationUC := newTestPushHandler(t)

	c, rec := newPushContext(t, `{"message":{"data":"%%%not-base64%%%"},"subscription":"s"}`)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockNotificationUC.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestPushHandler_HandlePush_BadEventJSON(t *testing.T) {
	h, mockNotificationUC := newTestPushHandler(t)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString([]byte("not json"))
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	c, rec := newPushContext(t, string(body))

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockNotificationUC.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestIsDispatchRetryable(t *testing.T) {
	assert.True(t, isDispatchRetryable(newRetryableError(errors.New("publish timeout"))))
	assert.True(t, isDispatchRetryable(errors.New("failed to list audience devices: timeout")))
	assert.False(t, isDispatchRetryable(domainerrors.ErrEventNotDeliverable))
	assert.False(t, isDispatchRetryable(errors.Wrap(domainerrors.ErrEventNotDeliverable, "failed to build push message")))
}
