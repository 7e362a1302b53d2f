package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gravity/internal/domain/entity"
	"gravity/internal/domain/service"
	mockRepo "gravity/internal/mocks/repository"
	mockSvc "gravity/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushHandlerFixtures struct {
	notificationSvc *mockSvc.MockNotificationService
	profileRepo     *mockRepo.MockProfileRepository
	socialRepo      *mockRepo.MockSocialRepository
}

func createTestPushHandler(t *testing.T) (*PushHandler, pushHandlerFixtures) {
	t.Helper()

	fixtures := pushHandlerFixtures{
		notificationSvc: mockSvc.NewMockNotificationService(t),
		profileRepo:     mockRepo.NewMockProfileRepository(t),
		socialRepo:      mockRepo.NewMockSocialRepository(t),
	}

	handler := &PushHandler{
		verifyPushAuth:  false,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		notificationSvc: fixtures.notificationSvc,
		profileRepo:     fixtures.profileRepo,
		socialRepo:      fixtures.socialRepo,
	}

	return handler, fixtures
}

func pushRequest(t *testing.T, event *service.LogEvent) *http.Request {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	msg := PubSubMessage{}
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.MessageID = "msg-1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestPushHandler_HandlePush_FansOutToTeammates(t *testing.T) {
	t.Parallel()

	handler, fixtures := createTestPushHandler(t)

	actorID := uuid.New()
	teammateID := uuid.New()
	challengeID := uuid.New()
	logID := uuid.New()

	event := &service.LogEvent{
		LogID:    logID.String(),
		UserID:   actorID.String(),
		Date:     "2026-03-01",
		Verified: true,
		Source:   "automated",
	}

	fixtures.profileRepo.EXPECT().
		FindByID(mock.Anything, actorID).
		Return(&entity.Profile{
			ID:                 actorID,
			Username:           "casey",
			CurrentChallengeID: &challengeID,
		}, nil).
		Once()

	fixtures.profileRepo.EXPECT().
		ListByChallenge(mock.Anything, challengeID).
		Return([]*entity.Profile{
			{ID: actorID, Username: "casey"},
			{ID: teammateID, Username: "sam"},
		}, nil).
		Once()

	fixtures.socialRepo.EXPECT().
		ListDevicesForUsers(mock.Anything, []uuid.UUID{teammateID}).
		Return([]*entity.PushDevice{
			{ID: uuid.New(), UserID: teammateID, FCMToken: "token-sam"},
		}, nil).
		Once()

	fixtures.notificationSvc.EXPECT().
		SendBatchNotification(
			mock.Anything,
			[]string{"token-sam"},
			"Gravity Update",
			"casey logged a verified workout for 2026-03-01",
			map[string]string{"log_id": logID.String(), "date": "2026-03-01"},
		).
		Return(1, 0, nil, nil).
		Once()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, event), rec)

	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_InvalidTokensAreDeleted(t *testing.T) {
	t.Parallel()

	handler, fixtures := createTestPushHandler(t)

	actorID := uuid.New()
	teammateID := uuid.New()
	challengeID := uuid.New()

	event := &service.LogEvent{
		LogID:    uuid.New().String(),
		UserID:   actorID.String(),
		Date:     "2026-03-02",
		Verified: true,
		Source:   "human",
	}

	fixtures.profileRepo.EXPECT().
		FindByID(mock.Anything, actorID).
		Return(&entity.Profile{
			ID:                 actorID,
			Username:           "casey",
			CurrentChallengeID: &challengeID,
		}, nil).
		Once()

	fixtures.profileRepo.EXPECT().
		ListByChallenge(mock.Anything, challengeID).
		Return([]*entity.Profile{
			{ID: actorID},
			{ID: teammateID},
		}, nil).
		Once()

	fixtures.socialRepo.EXPECT().
		ListDevicesForUsers(mock.Anything, []uuid.UUID{teammateID}).
		Return([]*entity.PushDevice{
			{ID: uuid.New(), UserID: teammateID, FCMToken: "stale-token"},
		}, nil).
		Once()

	fixtures.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"stale-token"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 1, []string{"stale-token"}, nil).
		Once()

	fixtures.socialRepo.EXPECT().
		DeleteDevicesByToken(mock.Anything, []string{"stale-token"}).
		Return(nil).
		Once()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, event), rec)

	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_UnverifiedEventIsAcked(t *testing.T) {
	t.Parallel()

	handler, _ := createTestPushHandler(t)

	event := &service.LogEvent{
		LogID:    uuid.New().String(),
		UserID:   uuid.New().String(),
		Date:     "2026-03-01",
		Verified: false,
		Source:   "human",
	}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, event), rec)

	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RepositoryFailureTriggersRetry(t *testing.T) {
	t.Parallel()

	handler, fixtures := createTestPushHandler(t)

	actorID := uuid.New()
	event := &service.LogEvent{
		LogID:    uuid.New().String(),
		UserID:   actorID.String(),
		Date:     "2026-03-01",
		Verified: true,
		Source:   "automated",
	}

	fixtures.profileRepo.EXPECT().
		FindByID(mock.Anything, actorID).
		Return(nil, fmt.Errorf("connection refused")).
		Once()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, event), rec)

	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_MalformedDataIsRejected(t *testing.T) {
	t.Parallel()

	handler, _ := createTestPushHandler(t)

	msg := PubSubMessage{}
	msg.Message.Data = "not base64!!!"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
