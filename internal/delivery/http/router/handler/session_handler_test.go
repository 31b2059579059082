package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"huddle/internal/delivery/http/validator"
	"huddle/internal/domain/entity"
	mockUC "huddle/internal/mocks/usecase"
	"huddle/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestSessionHandler(t *testing.T) (*SessionHandler, *mockUC.MockSessionUsecase) {
	t.Helper()

	mockSessionUC := mockUC.NewMockSessionUsecase(t)
	h := &SessionHandler{
		sessionUC: mockSessionUC,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return h, mockSessionUC
}

func TestSessionHandler_StartSession_Success(t *testing.T) {
	h, mockSessionUC := newTestSessionHandler(t)
	ownerID := uuid.New()

	c, rec := newSessionTestContext(t, http.MethodPost, "/sessions", `{"title":"打麻將","message":"缺一腳"}`)
	c.Set("userID", ownerID)

	mockSessionUC.EXPECT().
		StartSession(c.Request().Context(), ownerID, &usecase.StartSessionInput{
			Title:   "打麻將",
			Message: "缺一腳",
		}).
		Return(&entity.Session{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			Title:     "打麻將",
			Message:   "缺一腳",
			StartedAt: time.Now(),
		}, &usecase.DispatchSummary{Status: usecase.DispatchStatusSent, Delivered: 2}, nil)

	err := h.StartSession(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "打麻將")
	assert.Contains(t, rec.Body.String(), "\"delivered\":2")
}

func TestSessionHandler_StartSession_MissingTitle(t *testing.T) {
	h, mockSessionUC := newTestSessionHandler(t)

	c, rec := newSessionTestContext(t, http.MethodPost, "/sessions", `{"message":"缺一腳"}`)
	c.Set("userID", uuid.New())

	err := h.StartSession(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	mockSessionUC.AssertNotCalled(t, "StartSession")
}

func TestSessionHandler_StartSession_Unauthenticated(t *testing.T) {
	h, mockSessionUC := newTestSessionHandler(t)

	c, rec := newSessionTestContext(t, http.MethodPost, "/sessions", `{"title":"打麻將"}`)

	err := h.StartSession(c)

	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	mockSessionUC.AssertNotCalled(t, "StartSession")
}

func TestSessionHandler_EndSession_InvalidID(t *testing.T) {
	h, mockSessionUC := newTestSessionHandler(t)

	c, rec := newSessionTestContext(t, http.MethodPost, "/sessions/not-a-uuid/end", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	c.Set("userID", uuid.New())

	err := h.EndSession(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
	mockSessionUC.AssertNotCalled(t, "EndSession")
}

func TestSessionHandler_RespondToSession_Success(t *testing.T) {
	h, mockSessionUC := newTestSessionHandler(t)
	responderID := uuid.New()
	sessionID := uuid.New()

	c, rec := newSessionTestContext(t, http.MethodPost, "/sessions/"+sessionID.String()+"/responses", `{"kind":"join"}`)
	c.SetParamNames("id")
	c.SetParamValues(sessionID.String())
	c.Set("userID", responderID)

	mockSessionUC.EXPECT().
		RespondToSession(c.Request().Context(), responderID, sessionID, "join").
		Return(&entity.SessionResponse{
			ID:          uuid.New(),
			SessionID:   sessionID,
			ResponderID: responderID,
			Kind:        "join",
		}, &usecase.DispatchSummary{Status: usecase.DispatchStatusSent, Delivered: 1}, nil)

	err := h.RespondToSession(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "join")
}

func TestSessionHandler_RespondToSession_InvalidKind(t *testing.T) {
	h, mockSessionUC := newTestSessionHandler(t)
	sessionID := uuid.New()

	c, rec := newSessionTestContext(t, http.MethodPost, "/sessions/"+sessionID.String()+"/responses", `{"kind":"maybe"}`)
	c.SetParamNames("id")
	c.SetParamValues(sessionID.String())
	c.Set("userID", uuid.New())

	err := h.RespondToSession(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockSessionUC.AssertNotCalled(t, "RespondToSession")
}

func TestSessionHandler_GetFriendFeed_DefaultsToActiveOnly(t *testing.T) {
	h, mockSessionUC := newTestSessionHandler(t)
	userID := uuid.New()

	c, rec := newSessionTestContext(t, http.MethodGet, "/sessions/feed", "")
	c.Set("userID", userID)

	mockSessionUC.EXPECT().
		GetFriendFeed(c.Request().Context(), userID, true).
		Return([]*usecase.SessionFeedItem{}, nil)

	err := h.GetFriendFeed(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandler_GetFriendFeed_IncludeEnded(t *testing.T) {
	h, mockSessionUC := newTestSessionHandler(t)
	userID := uuid.New()

	c, rec := newSessionTestContext(t, http.MethodGet, "/sessions/feed?include_ended=true", "")
	c.Set("userID", userID)

	mockSessionUC.EXPECT().
		GetFriendFeed(c.Request().Context(), userID, false).
		Return([]*usecase.SessionFeedItem{}, nil)

	err := h.GetFriendFeed(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
